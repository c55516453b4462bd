// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 시작 후 고루틴에서 실행되며 Context 취소로 종료되는 서비스입니다.
//
// 호출자는 Start 호출 전에 serviceStopWG.Add(1)을 수행해야 하며,
// 서비스는 완전히 종료되면(시작 실패 포함) serviceStopWG.Done()을 호출합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
