package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"stay-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	schemaPath := flag.String("schema", "file://schema/schema.sql", "desired schema (atlas URL)")
	devURL := flag.String("dev-url", "docker://postgres/17/dev", "dev database used by atlas to compute the diff")
	dryRun := flag.Bool("dry-run", false, "print the planned statements without applying them")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logger.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", *atlasBin)
	if err != nil {
		logger.Error("atlas クライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         dbCfg.BuildDSN(),
		To:          *schemaPath,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("スキーマの適用に失敗しました", "error", err)
		os.Exit(1)
	}

	if *dryRun {
		logger.Info("適用予定のステートメント", "pending", res.Changes.Pending)
		return
	}
	logger.Info("スキーマを適用しました", "applied", len(res.Changes.Applied))
}
