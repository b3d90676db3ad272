// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"AddBOM/internal/infrastructure/filesystem"
	"AddBOM/internal/infrastructure/logging"
	"AddBOM/internal/interface/ui"
	"AddBOM/internal/usecase/report"
	"AddBOM/internal/usecase/stamp"
)

// RootDirectory は BOM を付与するファイルの置き場所です
const RootDirectory = "./files"

func newRootCmd(logger *logging.JSONLogger) *cobra.Command {
	return &cobra.Command{
		Use:           "addbom",
		Short:         "ファイルの先頭に UTF-8 BOM を付与します",
		Long:          fmt.Sprintf("%s 配下の隠しでないすべてのファイルの先頭に UTF-8 BOM を付与します。\n名前が \".\" で始まるファイルとディレクトリはスキップします。", RootDirectory),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, logger)
		},
	}
}

func run(cmd *cobra.Command, logger logging.Logger) error {
	fs := afero.NewOsFs()
	reporter := report.NewReporter(cmd.OutOrStdout())
	service := stamp.NewService(
		filesystem.NewWalker(fs, logger),
		filesystem.NewMarker(fs),
		reporter,
		logger,
	)

	summary, err := service.Run(RootDirectory)
	if err != nil {
		return err
	}

	if err := reporter.WriteSummary(summary); err != nil {
		return err
	}
	logger.Log("INFO", "処理が完了しました", nil)

	// プログラム終了前にEnterキーの入力を待機
	return ui.WaitForEnter(cmd.InOrStdin(), cmd.OutOrStdout())
}

func main() {
	// ログは標準エラーへ出し、標準出力は処理結果だけにする
	logger := logging.NewJSONLogger(os.Stderr)
	defer logger.Sync()

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Log("ERROR", "処理を中断しました", err)
		logger.Sync()
		os.Exit(1)
	}
}
