package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/wblg/bookquiz/internal/logger"
	"github.com/wblg/bookquiz/internal/models"
	"github.com/wblg/bookquiz/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type bookRepository struct {
	db *sql.DB
}

// NewBookRepository creates a new BookRepository implementation
func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) ListWithProgress(ctx context.Context, sessionID string) ([]models.BookOverview, error) {
	log := logger.FromContext(ctx).WithPrefix("book_repo")
	log.Debug("listing books: with_session=%t", sessionID != "")

	// Outer joins keep books with zero extracts in the result. The result join
	// is scoped to the session and to extracts of the same book, so completed
	// counts only distinct extracts that actually exist.
	query := sqlBuilder.Select(
		"b.book_id",
		"b.title",
		"COALESCE(b.author, '')",
		"COALESCE(b.year, 0)",
		"COALESCE(g.name, '')",
		"COUNT(DISTINCT e.extract_id)",
	).
		From("book b").
		LeftJoin("genre g ON g.genre_id = b.genre_id").
		LeftJoin("extract e ON e.book_id = b.book_id")

	if sessionID != "" {
		query = query.
			Column("COUNT(DISTINCT gr.extract_id)").
			LeftJoin("game_result gr ON gr.book_id = b.book_id AND gr.extract_id = e.extract_id AND gr.session_id = ?", sessionID)
	} else {
		query = query.Column("0")
	}

	query = query.
		GroupBy("b.book_id", "b.title", "b.author", "b.year", "g.name").
		OrderBy("b.book_id")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list books: %v", err)
		return nil, err
	}
	defer rows.Close()

	var books []models.BookOverview
	for rows.Next() {
		var b models.BookOverview
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.Genre, &b.Chapters, &b.CompletedChapters); err != nil {
			log.Error("failed to scan book row: %v", err)
			return nil, err
		}
		books = append(books, b)
	}
	log.Debug("found %d books", len(books))
	return books, rows.Err()
}

func (r *bookRepository) Get(ctx context.Context, bookID int64) (*models.Book, error) {
	log := logger.FromContext(ctx).WithPrefix("book_repo")
	log.Debug("getting book: id=%d", bookID)

	var b models.Book
	err := r.db.QueryRowContext(ctx, `
SELECT b.book_id, b.title, COALESCE(b.author, ''), COALESCE(b.year, 0), COALESCE(g.name, '')
FROM book b
LEFT JOIN genre g ON g.genre_id = b.genre_id
WHERE b.book_id = ?
`, bookID).Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.Genre)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("book not found: id=%d", bookID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get book: %v", err)
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) ListByTitle(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx).WithPrefix("book_repo")
	log.Debug("listing books by title")

	rows, err := r.db.QueryContext(ctx, `
SELECT b.book_id, b.title, COALESCE(b.author, ''), COALESCE(b.year, 0), COALESCE(g.name, '')
FROM book b
LEFT JOIN genre g ON g.genre_id = b.genre_id
ORDER BY b.title ASC
`)
	if err != nil {
		log.Error("failed to list books: %v", err)
		return nil, err
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.Genre); err != nil {
			log.Error("failed to scan book row: %v", err)
			return nil, err
		}
		books = append(books, b)
	}
	log.Debug("found %d books", len(books))
	return books, rows.Err()
}

func (r *bookRepository) ExtractsForBook(ctx context.Context, bookID int64) ([]models.Extract, error) {
	log := logger.FromContext(ctx).WithPrefix("book_repo")
	log.Debug("listing extracts: book_id=%d", bookID)

	rows, err := r.db.QueryContext(ctx, `
SELECT extract_id, book_id, extract_no, COALESCE(extract_title, '')
FROM extract
WHERE book_id = ?
ORDER BY extract_no ASC
`, bookID)
	if err != nil {
		log.Error("failed to list extracts: %v", err)
		return nil, err
	}
	defer rows.Close()
	return scanExtracts(rows, log)
}

func (r *bookRepository) ExtractsAll(ctx context.Context) ([]models.Extract, error) {
	log := logger.FromContext(ctx).WithPrefix("book_repo")
	log.Debug("listing all extracts")

	rows, err := r.db.QueryContext(ctx, `
SELECT extract_id, book_id, extract_no, COALESCE(extract_title, '')
FROM extract
ORDER BY book_id ASC, extract_no ASC
`)
	if err != nil {
		log.Error("failed to list extracts: %v", err)
		return nil, err
	}
	defer rows.Close()
	return scanExtracts(rows, log)
}

func scanExtracts(rows *sql.Rows, log *logger.Logger) ([]models.Extract, error) {
	var extracts []models.Extract
	for rows.Next() {
		var e models.Extract
		if err := rows.Scan(&e.ID, &e.BookID, &e.No, &e.Title); err != nil {
			log.Error("failed to scan extract row: %v", err)
			return nil, err
		}
		extracts = append(extracts, e)
	}
	log.Debug("found %d extracts", len(extracts))
	return extracts, rows.Err()
}
