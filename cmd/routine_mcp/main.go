// Package main runs the fitroutine MCP server over stdio (for local editor/agent use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
// Over stdio there is no bearer header, so get_current_overview is not offered here.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/fitroutine/internal/config"
	"github.com/2beens/fitroutine/internal/db"
	routinemcp "github.com/2beens/fitroutine/internal/mcp"
	"github.com/2beens/fitroutine/internal/routine"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	withDB := flag.Bool("with-db", false, "connect to postgres and expose the DB schema tool")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	routineService := routine.NewService(routine.NewServiceParams{})

	var schemaRepo routinemcp.SchemaRepo
	if *withDB {
		cfg, err := config.Load(*env, *configPath)
		if err != nil {
			log.Fatalf("load config: %s", err)
		}

		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			TracingEnabled: false,
		})
		if err != nil {
			log.Fatalf("db pool: %s", err)
		}
		defer dbPool.Close()

		schemaRepo = routinemcp.NewPoolSchemaRepo(dbPool)
	}

	server := routinemcp.NewServer(routinemcp.NewContextService(routineService, schemaRepo, nil, nil))
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %s", err)
	}
}
