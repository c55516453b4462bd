package log

import (
	"errors"
	"io"
	"sync"
)

// closer Setup이 만든 Hook과 로그 파일들을 한 번에 정리합니다.
// Close는 여러 번 호출해도 최초 한 번만 실제로 동작합니다.
type closer struct {
	closers []io.Closer
	hook    *hook

	once sync.Once
	err  error
}

func (c *closer) Close() error {
	c.once.Do(func() {
		// 닫힌 파일에 쓰지 않도록 Hook을 먼저 비활성화합니다.
		if c.hook != nil {
			c.hook.Close()
		}

		for _, fc := range c.closers {
			if s, ok := fc.(interface{ Sync() error }); ok {
				_ = s.Sync()
			}
			if err := fc.Close(); err != nil {
				c.err = errors.Join(c.err, err)
			}
		}
	})

	return c.err
}
