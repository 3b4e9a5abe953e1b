package infra

import (
	"fmt"

	"github.com/alencarrgabriel/GeradorRecibos/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express (partial unique indexes, CHECK constraints).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates / updates the schema. Exported so integration tests
// can run it against a scratch database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Gaveta{},
		&model.GavetaSessao{},
		&model.Movimentacao{},
		&model.Empresa{},
		&model.Colaborador{},
		&model.Prestador{},
		&model.Fornecedor{},
		&model.Recibo{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement is guarded so re-running on an already-patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// At most one ABERTA session per drawer. The partial unique index makes
		// the open/close race impossible at the database level, whatever the
		// application layer checked first.
		{"partial unique index on open sessions", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_gaveta_sessoes_aberta') THEN
    CREATE UNIQUE INDEX uni_gaveta_sessoes_aberta
        ON gaveta_sessoes (gaveta_id)
        WHERE status = 'ABERTA';
  END IF;
END $$`},
		// Ledger rows are strictly positive; the service validates this too,
		// the constraint catches writes that bypass it.
		{"positive amount check on movimentacoes", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_movimentacoes_valor_positivo') THEN
    ALTER TABLE movimentacoes
      ADD CONSTRAINT chk_movimentacoes_valor_positivo CHECK (valor > 0);
  END IF;
END $$`},
		// Closing-report queries scan a session's movements in append order.
		{"movement lookup index", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_movimentacoes_sessao_created') THEN
    CREATE INDEX idx_movimentacoes_sessao_created
        ON movimentacoes (sessao_id, created_at);
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
