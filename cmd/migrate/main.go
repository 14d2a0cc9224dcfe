package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/estoque-restaurante/estoque-api/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("aviso: .env não encontrado, usando só variáveis de ambiente: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("goose: carregar configuração: %v", err)
	}

	var dir string
	flag.StringVar(&dir, "dir", "./sql", "diretório com os arquivos de migração")
	flag.Parse()

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("goose: conectar à DB: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: fechar DB: %v", err)
		}
	}()

	args := flag.Args()
	command := "up"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	if err := goose.Run(command, db, dir, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}
	fmt.Printf("goose %s success\n", command)
}
