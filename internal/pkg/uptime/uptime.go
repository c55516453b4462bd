// Package uptime 프로세스 가동 시간을 계산합니다.
package uptime

import (
	"fmt"
	"time"
)

// Uptime 경과 시간(초)과 사람이 읽기 쉬운 표현을 함께 담습니다.
type Uptime struct {
	Seconds int64
	Human   string
}

// Compute start부터 now까지의 경과 시간을 계산합니다.
//
// 경과 시간은 초 단위로 내림하며 음수가 되지 않습니다.
// 두 시각 모두 monotonic clock 값을 가지고 있으면 그 값으로 계산되므로 시스템 시계 변경의 영향을 받지 않습니다.
func Compute(start, now time.Time) Uptime {
	seconds := int64(now.Sub(start) / time.Second)
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	return Uptime{
		Seconds: seconds,
		Human:   fmt.Sprintf("%d hours, %d minutes", hours, minutes),
	}
}
