package hetzner

import (
	"cmp"
	"context"
	"slices"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// selectServerType 사양을 만족하는 x86 서버 타입 중 가장 작은 것을 선택합니다.
// 지원 종료가 예고된 타입은 후보에서 제외합니다. 크기 비교는 vCPU, 메모리, 디스크, 이름 순입니다.
func selectServerType(ctx context.Context, api serverTypeAPI, cores, memoryGB, diskGB int) (*hcloud.ServerType, error) {
	all, err := api.All(ctx)
	if err != nil {
		return nil, wrapAPIError(err, "서버 타입 목록을 조회할 수 없습니다")
	}

	candidates := slices.DeleteFunc(slices.Clone(all), func(st *hcloud.ServerType) bool {
		return st == nil ||
			st.IsDeprecated() ||
			st.Architecture != hcloud.ArchitectureX86 ||
			st.Cores < cores ||
			st.Memory < float32(memoryGB) ||
			st.Disk < diskGB
	})
	if len(candidates) == 0 {
		return nil, newErrNoServerType(cores, memoryGB, diskGB)
	}

	return slices.MinFunc(candidates, func(a, b *hcloud.ServerType) int {
		return cmp.Or(
			cmp.Compare(a.Cores, b.Cores),
			cmp.Compare(a.Memory, b.Memory),
			cmp.Compare(a.Disk, b.Disk),
			cmp.Compare(a.Name, b.Name),
		)
	}), nil
}
