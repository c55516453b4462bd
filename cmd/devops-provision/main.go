package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/darkkaiser/devops-info-service/internal/cli"
	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	applog "github.com/darkkaiser/devops-info-service/pkg/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// 명령어 결과는 표준 출력으로, 진행 로그는 표준 에러로 분리합니다.
	appLogCloser, err := applog.Setup(logOptions(stderr))
	if err != nil {
		fmt.Fprintf(stderr, "[FATAL] 로그 시스템 초기화 실패 (Cause: %v)\n", err)
		return 1
	}
	defer appLogCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.DefaultDependencies())
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		if errors.Unwrap(err) != nil {
			fmt.Fprintf(stderr, "[CAUSE] %v\n", apperrors.RootCause(err))
		}
		return 1
	}
	return 0
}

func logOptions(console io.Writer) applog.Options {
	return applog.Options{
		Name:             cli.AppName,
		Level:            applog.InfoLevel,
		Format:           applog.FormatText,
		EnableConsoleLog: true,
		ConsoleWriter:    console,
	}
}
