package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	// sqlite driver
	_ "modernc.org/sqlite"

	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/logger"
	"max.ks1230/home-ledger/internal/model/customerr"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const dsnTemplate = "user=%s password=%s host=%s port=%d dbname=%s sslmode=%s"

// createdLayout keeps sqlite timestamps the same width so they sort as text.
const createdLayout = "2006-01-02T15:04:05.000000000Z07:00"

var (
	incomeColumns  = []string{"id", "date", "service", "amount", "given_to_home", "given_to", "created_at"}
	expenseColumns = []string{"id", "date", "paid_to", "amount", "created_at"}
)

type postgresConfig interface {
	Host() string
	Port() int
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

type sqliteConfig interface {
	Path() string
}

// SQLStorage keeps records in the income and expense tables of a SQL database.
type SQLStorage struct {
	db      *sql.DB
	driver  string
	builder sq.StatementBuilderType
}

func PostgresDSN(config postgresConfig) string {
	return fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Port(),
		config.Database(),
		config.SSLMode())
}

func SQLiteDSN(config sqliteConfig) string {
	return "file:" + config.Path() + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

func NewPostgresStorage(config postgresConfig) (*SQLStorage, error) {
	db, err := sql.Open(DriverPostgres, PostgresDSN(config))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return newSQLStorage(db, DriverPostgres), nil
}

func NewSQLiteStorage(config sqliteConfig) (*SQLStorage, error) {
	db, err := sql.Open(DriverSQLite, SQLiteDSN(config))
	if err != nil {
		return nil, errors.Wrap(err, "cannot open sqlite database")
	}
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot open sqlite database")
	}
	return newSQLStorage(db, DriverSQLite), nil
}

func newSQLStorage(db *sql.DB, driver string) *SQLStorage {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == DriverPostgres {
		placeholder = sq.Dollar
	}
	return &SQLStorage{
		db:      db,
		driver:  driver,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

func (s *SQLStorage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}

func (s *SQLStorage) SelectIncomes(ctx context.Context, q Query) ([]ledger.Income, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	query := s.filter(s.builder.Select(incomeColumns...).From(ledger.KindIncome.Table()), q)
	if q.Disbursed {
		query = query.Where(sq.Gt{"given_to_home": 0})
	}

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, customerr.Store("select incomes", err)
	}
	defer closeRows(rows)

	res := make([]ledger.Income, 0)
	for rows.Next() {
		var inc ledger.Income
		err = rows.Scan(&inc.ID, &inc.Date, &inc.Service, &inc.Amount, &inc.GivenToHome, &inc.GivenTo,
			timestamp{&inc.CreatedAt})
		if err != nil {
			return nil, errors.Wrap(err, "scan income")
		}
		res = append(res, inc)
	}
	if err = rows.Err(); err != nil {
		return nil, customerr.Store("select incomes", err)
	}
	return res, nil
}

func (s *SQLStorage) SelectExpenses(ctx context.Context, q Query) ([]ledger.Expense, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	query := s.filter(s.builder.Select(expenseColumns...).From(ledger.KindExpense.Table()), q)

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, customerr.Store("select expenses", err)
	}
	defer closeRows(rows)

	res := make([]ledger.Expense, 0)
	for rows.Next() {
		var exp ledger.Expense
		err = rows.Scan(&exp.ID, &exp.Date, &exp.PaidTo, &exp.Amount, timestamp{&exp.CreatedAt})
		if err != nil {
			return nil, errors.Wrap(err, "scan expense")
		}
		res = append(res, exp)
	}
	if err = rows.Err(); err != nil {
		return nil, customerr.Store("select expenses", err)
	}
	return res, nil
}

func (s *SQLStorage) InsertIncome(ctx context.Context, rec ledger.Income) (ledger.Income, error) {
	rec.CreatedAt = createdNow(rec.CreatedAt)
	query := s.builder.Insert(ledger.KindIncome.Table()).
		Columns("date", "service", "amount", "given_to_home", "given_to", "created_at").
		Values(rec.Date, rec.Service, rec.Amount, rec.GivenToHome, rec.GivenTo, s.timeArg(rec.CreatedAt)).
		Suffix("RETURNING id")

	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&rec.ID)
	if err != nil {
		return ledger.Income{}, customerr.Store("insert income", err)
	}
	return rec, nil
}

func (s *SQLStorage) InsertExpense(ctx context.Context, rec ledger.Expense) (ledger.Expense, error) {
	rec.CreatedAt = createdNow(rec.CreatedAt)
	query := s.builder.Insert(ledger.KindExpense.Table()).
		Columns("date", "paid_to", "amount", "created_at").
		Values(rec.Date, rec.PaidTo, rec.Amount, s.timeArg(rec.CreatedAt)).
		Suffix("RETURNING id")

	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&rec.ID)
	if err != nil {
		return ledger.Expense{}, customerr.Store("insert expense", err)
	}
	return rec, nil
}

func (s *SQLStorage) UpdateIncome(ctx context.Context, rec ledger.Income) error {
	query := s.builder.Update(ledger.KindIncome.Table()).
		SetMap(map[string]interface{}{
			"date":          rec.Date,
			"service":       rec.Service,
			"amount":        rec.Amount,
			"given_to_home": rec.GivenToHome,
			"given_to":      rec.GivenTo,
		}).
		Where(sq.Eq{"id": rec.ID})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return customerr.Store("update income", err)
	}
	return ensureAffected(res, "update income")
}

func (s *SQLStorage) UpdateExpense(ctx context.Context, rec ledger.Expense) error {
	query := s.builder.Update(ledger.KindExpense.Table()).
		SetMap(map[string]interface{}{
			"date":    rec.Date,
			"paid_to": rec.PaidTo,
			"amount":  rec.Amount,
		}).
		Where(sq.Eq{"id": rec.ID})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return customerr.Store("update expense", err)
	}
	return ensureAffected(res, "update expense")
}

func (s *SQLStorage) Delete(ctx context.Context, kind ledger.Kind, id int64) error {
	if kind != ledger.KindIncome && kind != ledger.KindExpense {
		return ledger.ErrUnknownKind
	}
	query := s.builder.Delete(kind.Table()).Where(sq.Eq{"id": id})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return customerr.Store("delete "+string(kind), err)
	}
	return ensureAffected(res, "delete "+string(kind))
}

func (s *SQLStorage) filter(b sq.SelectBuilder, q Query) sq.SelectBuilder {
	if q.ID != 0 {
		b = b.Where(sq.Eq{"id": q.ID})
	}
	if q.Date != "" {
		b = b.Where(sq.Eq{"date": q.Date})
	}
	if q.From != "" {
		b = b.Where(sq.GtOrEq{"date": q.From})
	}
	if q.To != "" {
		b = b.Where(sq.LtOrEq{"date": q.To})
	}
	if q.OrderBy != "" {
		dir := "ASC"
		if q.Desc {
			dir = "DESC"
		}
		b = b.OrderBy(q.OrderBy+" "+dir, "id "+dir)
	}
	if q.Limit > 0 {
		b = b.Limit(q.Limit)
	}
	return b
}

func (s *SQLStorage) timeArg(t time.Time) interface{} {
	if s.driver == DriverSQLite {
		return t.UTC().Format(createdLayout)
	}
	return t.UTC()
}

func createdNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

func ensureAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return customerr.Store(op, err)
	}
	if n == 0 {
		return errors.Wrap(ErrNotFound, op)
	}
	return nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Error("error closing rows", zap.Error(err))
	}
}

type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts.t = time.Time{}
		return nil
	case time.Time:
		*ts.t = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	}
	return fmt.Errorf("cannot scan %T into timestamp", src)
}

func (ts timestamp) parse(s string) error {
	for _, layout := range []string{createdLayout, time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			*ts.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}
