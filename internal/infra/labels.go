package infra

import (
	"maps"
	"strconv"

	"github.com/iancoleman/strcase"
)

// 모든 리소스에 붙는 공통 라벨 값
const (
	LabelManagedBy = "devops-provision"
	LabelPurpose   = "devops-course"
)

// Labels 키를 snake_case로 정규화한 라벨 집합입니다.
type Labels map[string]string

// NewLabels 키를 snake_case로 정규화하여 Labels를 생성합니다. (예: "managedBy" -> "managed_by")
func NewLabels(kv map[string]string) Labels {
	l := make(Labels, len(kv))
	for k, v := range kv {
		l[strcase.ToSnake(k)] = v
	}
	return l
}

// With 원본을 변경하지 않고 라벨을 추가한 사본을 반환합니다.
func (l Labels) With(key, value string) Labels {
	out := maps.Clone(l)
	if out == nil {
		out = make(Labels, 1)
	}
	out[strcase.ToSnake(key)] = value
	return out
}

// commonLabels 입력값으로부터 모든 리소스에 공통으로 붙는 라벨을 생성합니다.
func commonLabels(in Inputs) Labels {
	return NewLabels(map[string]string{
		"environment": in.Environment,
		"managedBy":   LabelManagedBy,
		"purpose":     LabelPurpose,
	})
}

// instanceLabels 프로바이더가 직접 지원하지 않는 사양(vCPU 점유율, 디스크 종류)을 라벨로 남깁니다.
func instanceLabels(in Inputs) Labels {
	return commonLabels(in).
		With("coreFraction", strconv.Itoa(in.VMCoreFraction)).
		With("diskType", in.DiskType)
}
