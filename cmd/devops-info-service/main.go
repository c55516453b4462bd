package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/darkkaiser/devops-info-service/internal/config"
	"github.com/darkkaiser/devops-info-service/internal/pkg/sysinfo"
	"github.com/darkkaiser/devops-info-service/internal/pkg/version"
	"github.com/darkkaiser/devops-info-service/internal/service"
	"github.com/darkkaiser/devops-info-service/internal/service/api"
	applog "github.com/darkkaiser/devops-info-service/pkg/log"
)

// @title DevOps Info Service API
// @version 1.0.0
// @description 서비스와 실행 호스트의 정보를 JSON으로 제공하는 API입니다.
// @description
// @description ## 엔드포인트
// @description - GET / : 서비스, 시스템, 런타임, 요청 정보
// @description - GET /health : 헬스체크 (liveness/readiness probe)
// @description - GET /version : 빌드 정보
// @description
// @description 모든 엔드포인트는 GET만 허용하며 인증이 필요하지 않습니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

const banner = `
  ____              ___                ___         __
 |  _ \  _____   __/ _ \ _ __  ___    |_ _|_ __  / _| ___
 | | | |/ _ \ \ / / | | | '_ \/ __|    | || '_ \| |_ / _ \
 | |_| |  __/\ V /| |_| | |_) \__ \    | || | | |  _| (_) |
 |____/ \___| \_/  \___/| .__/|___/   |___|_| |_|_|  \___/
                        |_|                          %s
--------------------------------------------------------------------------------
`

func main() {
	// 가동 시간의 기준 시각은 다른 어떤 초기화보다 먼저 기록합니다.
	startTime := time.Now()

	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := applog.Setup(logOptions(appConfig.Debug))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     environmentName(appConfig.Debug),
		"address": appConfig.Server.Address(),
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	apiService := api.NewService(appConfig, sysinfo.NewHostInspector(), buildInfo, startTime)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	services := []service.Service{apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			applog.StandardLogger().Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호 수신")
	cancel()
	serviceStopWG.Wait()
}

// logOptions Debug 여부에 따라 개발/운영 로그 설정을 선택합니다.
func logOptions(debug bool) applog.Options {
	if debug {
		return applog.NewDevelopmentOptions(config.AppName)
	}
	return applog.NewProductionOptions(config.AppName)
}

func environmentName(debug bool) string {
	if debug {
		return "development"
	}
	return "production"
}
