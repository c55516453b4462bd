// Package version 바이너리에 포함된 빌드 메타데이터를 제공합니다.
//
// 릴리스 빌드는 -ldflags "-X" 로 버전 정보를 주입하며,
// 주입값이 없는 개발 빌드(go run 등)는 debug.ReadBuildInfo의 VCS 정보로 보강합니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const unknown = "unknown"

// 링커 플래그로 주입되는 값입니다. 직접 참조하지 말고 Get()을 사용합니다.
//
//	-X github.com/darkkaiser/devops-info-service/internal/pkg/version.appVersion=v1.2.0
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = "" // clean | dirty
	buildDate     = ""
)

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 둡니다.
var readBuildInfo = debug.ReadBuildInfo

// Info 빌드 정보입니다. /version 응답과 시작 로그에 사용됩니다.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Dirty     bool   `json:"dirty"`
}

var current = sync.OnceValue(func() Info {
	return resolve(Info{
		Version:   strings.TrimSpace(appVersion),
		Commit:    strings.TrimSpace(gitCommitHash),
		BuildDate: strings.TrimSpace(buildDate),
		Dirty:     strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	})
})

// Get 현재 바이너리의 빌드 정보를 반환합니다.
func Get() Info {
	return current()
}

// resolve 주입되지 않은 필드를 런타임 정보와 VCS 메타데이터로 채웁니다.
// 이미 값이 있는 필드는 덮어쓰지 않습니다.
func resolve(bi Info) Info {
	bi.GoVersion = runtime.Version()
	bi.OS = runtime.GOOS
	bi.Arch = runtime.GOARCH

	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if bi.Commit == "" {
					bi.Commit = s.Value
				}
			case "vcs.time":
				if bi.BuildDate == "" {
					bi.BuildDate = s.Value
				}
			case "vcs.modified":
				bi.Dirty = bi.Dirty || s.Value == "true"
			}
		}

		if bi.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			bi.Version = info.Main.Version
		}
	}

	for _, f := range []*string{&bi.Version, &bi.Commit, &bi.BuildDate} {
		if *f == "" {
			*f = unknown
		}
	}

	return bi
}

// ToMap 구조화 로그 필드로 사용할 수 있는 형태로 반환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":    i.Version,
		"commit":     i.Commit,
		"build_date": i.BuildDate,
		"go_version": i.GoVersion,
		"os":         i.OS,
		"arch":       i.Arch,
		"dirty":      i.Dirty,
	}
}

// String "v1.2.0+dirty (commit: f25b8bf, go1.25.1 linux/amd64)" 형태의 요약 문자열입니다.
func (i Info) String() string {
	v := i.Version
	if i.Dirty {
		v += "+dirty"
	}

	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}

	return fmt.Sprintf("%s (commit: %s, %s %s/%s)", v, commit, i.GoVersion, i.OS, i.Arch)
}
