package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	_ "github.com/darkkaiser/devops-info-service/docs"
	"github.com/darkkaiser/devops-info-service/internal/config"
	"github.com/darkkaiser/devops-info-service/internal/pkg/sysinfo"
	"github.com/darkkaiser/devops-info-service/internal/pkg/version"
	"github.com/darkkaiser/devops-info-service/internal/service/api/constants"
	"github.com/darkkaiser/devops-info-service/internal/service/api/handler/system"
	applog "github.com/darkkaiser/devops-info-service/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/net/netutil"
)

// Service 정보 API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start()로 시작하며 전달받은 Context가 취소되면 진행 중인 요청을 마무리한 뒤 종료합니다.
type Service struct {
	appConfig *config.AppConfig

	inspector sysinfo.Inspector
	buildInfo version.Info
	startTime time.Time

	running   bool
	runningMu sync.Mutex

	// 실제로 바인딩된 주소 (포트 0으로 시작한 경우 확인용)
	addr net.Addr
}

// NewService Service 인스턴스를 생성합니다.
//
// startTime은 가동 시간 계산의 기준 시각으로, 프로세스 시작 시 한 번 기록한 값을 전달합니다.
func NewService(appConfig *config.AppConfig, inspector sysinfo.Inspector, buildInfo version.Info, startTime time.Time) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if inspector == nil {
		panic(constants.PanicMsgInspectorRequired)
	}

	return &Service{
		appConfig: appConfig,

		inspector: inspector,
		buildInfo: buildInfo,
		startTime: startTime,
	}
}

// Start API 서비스를 시작합니다.
//
// 리슨 소켓은 호출한 고루틴에서 바로 생성하므로, 포트 충돌과 같은 바인딩 실패는 에러로 반환됩니다.
// 이 경우 serviceStopWG.Done()도 함께 호출됩니다.
// 바인딩에 성공하면 서버는 별도의 고루틴에서 실행되고 이 함수는 즉시 반환됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return ErrServiceAlreadyRunning
	}

	address := s.appConfig.Server.Address()
	ln, err := net.Listen("tcp", address)
	if err != nil {
		serviceStopWG.Done()
		return newErrListenFailed(err, address)
	}
	s.addr = ln.Addr()

	s.running = true

	e := s.setupServer()
	e.Listener = netutil.LimitListener(ln, constants.DefaultMaxConnections)

	go s.runServiceLoop(serviceStopCtx, serviceStopWG, e)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"address": s.addr.String(),
	}).Info(constants.LogMsgServiceStarted)

	return nil
}

// Addr 서버가 바인딩된 주소를 반환합니다. 시작 전에는 nil입니다.
func (s *Service) Addr() net.Addr {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.addr
}

// runServiceLoop 서비스의 메인 실행 루프입니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, e *echo.Echo) {
	defer serviceStopWG.Done()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Handler, 미들웨어 체인, 라우트가 구성된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(s.appConfig.Service, s.inspector, s.buildInfo, s.startTime)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		AllowOrigins:       s.appConfig.CORS.AllowOrigins,
		RateLimitPerSecond: s.appConfig.RateLimit.RequestsPerSecond,
		RateLimitBurst:     s.appConfig.RateLimit.Burst,
	})

	RegisterRoutes(e, systemHandler, s.appConfig.Debug)

	return e
}

// startHTTPServer 미리 생성된 리스너로 HTTP 서버를 실행합니다.
// 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"address": e.Listener.Addr().String(),
	}).Info(constants.LogMsgHTTPServerListening)

	s.handleServerError(e.Start(""))
}

// handleServerError HTTP 서버가 반환한 에러를 처리합니다.
//   - nil, http.ErrServerClosed: 정상 종료
//   - 그 외: 예상치 못한 에러로 기록
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"address": s.appConfig.Server.Address(),
		"error":   err,
	}).Error(constants.LogMsgHTTPServerFatalError)
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 서버가 먼저 종료된 경우 Shutdown 없이 상태만 정리합니다.
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
