package db

import (
	"fmt"
	"log"
	"os"

	"shoplend-totem/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

// Migrate cria tabelas, índices e as views de leitura.
//
// NÃO existe índice único parcial garantindo "um empréstimo ativo por
// equipamento": o fluxo do totem confia na checagem de status antes da
// escrita e essa lacuna é conhecida.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Client{},
		&models.Operator{},
		&models.Equipment{},
		&models.Loan{},
		&models.QueueEntry{},
	); err != nil {
		return err
	}

	// Consulta de empréstimos abertos por equipamento
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_ativo_equipamento
	  ON %s (equipamento_id, data_emprestimo DESC)
	  WHERE status = 'ativo';
	`, models.LoanTable, models.LoanTable)).Error; err != nil {
		return err
	}

	// Agregado de disponibilidade por tipo, recalculado pelo banco
	if err := db.Exec(fmt.Sprintf(`
	  CREATE OR REPLACE VIEW %s AS
	  SELECT tipo_equipamento,
	         localizacao,
	         COUNT(*)                                      AS total,
	         COUNT(*) FILTER (WHERE status = 'disponivel') AS disponiveis,
	         COUNT(*) FILTER (WHERE status = 'em_uso')     AS em_uso,
	         COUNT(*) FILTER (WHERE status = 'manutencao') AS em_manutencao
	  FROM %s
	  GROUP BY tipo_equipamento, localizacao;
	`, models.AvailabilityView, models.EquipmentTable)).Error; err != nil {
		return err
	}

	// Empréstimos ativos com nomes já juntados
	if err := db.Exec(fmt.Sprintf(`
	  CREATE OR REPLACE VIEW %s AS
	  SELECT e.id,
	         c.nome     AS cliente_nome,
	         c.telefone AS cliente_telefone,
	         c.categoria_cliente,
	         q.codigo   AS equipamento_codigo,
	         q.tipo_equipamento,
	         e.data_emprestimo,
	         e.data_devolucao_prevista,
	         e.tempo_uso_estimado,
	         s.nome     AS seguranca_nome,
	         CASE WHEN e.data_devolucao_prevista < NOW()
	              THEN 'atrasado' ELSE 'no_prazo' END AS status_atual
	  FROM %s e
	  JOIN %s c ON c.id = e.cliente_id
	  JOIN %s q ON q.id = e.equipamento_id
	  JOIN %s s ON s.id = e.seguranca_id
	  WHERE e.status = 'ativo';
	`, models.ActiveLoansView, models.LoanTable, models.ClientTable,
		models.EquipmentTable, models.OperatorTable)).Error; err != nil {
		return err
	}

	// Fila de espera ordenada (schema existe, nenhum fluxo usa ainda)
	if err := db.Exec(fmt.Sprintf(`
	  CREATE OR REPLACE VIEW %s AS
	  SELECT f.id,
	         f.posicao,
	         f.status,
	         f.tempo_uso_estimado,
	         f.tipo_equipamento_solicitado,
	         f.data_entrada_fila,
	         c.nome     AS cliente_nome,
	         c.telefone AS cliente_telefone,
	         c.categoria_cliente
	  FROM %s f
	  JOIN %s c ON c.id = f.cliente_id
	  ORDER BY f.posicao;
	`, models.QueueView, models.QueueTable, models.ClientTable)).Error; err != nil {
		return err
	}

	return nil
}
