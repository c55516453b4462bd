// Package sysinfo 정보 엔드포인트에 노출할 호스트 및 런타임 정보를 수집합니다.
//
// HTTP 핸들러는 Inspector 인터페이스에만 의존하므로, 테스트에서는 StaticInspector로
// 결정적인 값을 주입할 수 있습니다.
package sysinfo

import (
	"os"
	"runtime"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const unknown = "unknown"

// Facts 호스트와 런타임에 대한 정보입니다.
type Facts struct {
	Hostname        string
	Platform        string
	PlatformVersion string
	Architecture    string
	CPUCount        int
	GoVersion       string
}

// Inspector 실행 환경의 정보를 조회합니다.
type Inspector interface {
	Inspect() Facts
}

// HostInspector 현재 프로세스가 실행 중인 호스트를 조회합니다.
// 호출할 때마다 값을 새로 읽으며 캐시하지 않습니다.
type HostInspector struct{}

// NewHostInspector 새로운 HostInspector를 생성합니다.
func NewHostInspector() *HostInspector {
	return &HostInspector{}
}

// Inspect 호스트 정보를 조회합니다. 조회에 실패한 항목은 "unknown"으로 채워집니다.
func (HostInspector) Inspect() Facts {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = unknown
	}

	release, machine := uname()

	return Facts{
		Hostname:        hostname,
		Platform:        platformName(runtime.GOOS),
		PlatformVersion: release,
		Architecture:    machine,
		CPUCount:        max(runtime.NumCPU(), 1),
		GoVersion:       runtime.Version(),
	}
}

// platformName GOOS 값을 표시용 이름으로 변환합니다. (예: linux -> Linux)
func platformName(goos string) string {
	return cases.Title(language.English).String(goos)
}

// StaticInspector 항상 동일한 Facts를 반환합니다.
type StaticInspector struct {
	Facts Facts
}

func (s StaticInspector) Inspect() Facts {
	return s.Facts
}
