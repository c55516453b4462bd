package infra

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Graph 리소스와 그 의존 관계입니다.
type Graph struct {
	Inputs    Inputs     `json:"inputs" yaml:"inputs"`
	Resources []Resource `json:"resources" yaml:"resources"`
}

// Resource 이름으로 리소스를 찾습니다.
func (g *Graph) Resource(name string) (Resource, bool) {
	for _, r := range g.Resources {
		if r.Name == name {
			return r, true
		}
	}
	return Resource{}, false
}

// Order 의존 관계를 만족하는 생성 순서를 반환합니다.
// 순서가 결정되지 않는 리소스끼리는 선언 순서를 따릅니다.
func (g *Graph) Order() ([]Resource, error) {
	waves, err := g.Waves()
	if err != nil {
		return nil, err
	}

	ordered := make([]Resource, 0, len(g.Resources))
	for _, wave := range waves {
		ordered = append(ordered, wave...)
	}
	return ordered, nil
}

// Waves 리소스를 동시에 생성할 수 있는 단계로 묶어 반환합니다.
// n번째 단계의 리소스는 이전 단계의 리소스에만 의존합니다.
func (g *Graph) Waves() ([][]Resource, error) {
	index := make(map[string]int, len(g.Resources))
	for i, r := range g.Resources {
		if _, dup := index[r.Name]; dup {
			return nil, newErrDuplicateResource(r.Name)
		}
		index[r.Name] = i
	}

	inDegree := make([]int, len(g.Resources))
	dependents := make([][]int, len(g.Resources))
	for i, r := range g.Resources {
		for _, dep := range r.DependsOn {
			j, ok := index[dep]
			if !ok {
				return nil, newErrUnknownDependency(r.Name, dep)
			}
			inDegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	var ready []int
	for i, d := range inDegree {
		if d == 0 {
			ready = append(ready, i)
		}
	}

	var waves [][]Resource
	visited := 0
	for len(ready) > 0 {
		wave := make([]Resource, 0, len(ready))
		var next []int
		for _, i := range ready {
			wave = append(wave, g.Resources[i])
			visited++
			for _, k := range dependents[i] {
				inDegree[k]--
				if inDegree[k] == 0 {
					next = append(next, k)
				}
			}
		}
		slices.Sort(next)

		waves = append(waves, wave)
		ready = next
	}

	if visited != len(g.Resources) {
		return nil, ErrCyclicDependency
	}

	return waves, nil
}

// Reversed 삭제 순서(생성 순서의 역순)를 반환합니다.
func (g *Graph) Reversed() ([]Resource, error) {
	ordered, err := g.Order()
	if err != nil {
		return nil, err
	}
	slices.Reverse(ordered)
	return ordered, nil
}

// Evaluate 그래프를 단계별로 평가합니다.
//
// 같은 단계의 리소스는 동시에 fn으로 전달되며, 하나라도 실패하면 해당 단계가 끝난 뒤
// 다음 단계로 진행하지 않고 첫 번째 에러를 반환합니다. fn은 동시에 호출될 수 있습니다.
func Evaluate(ctx context.Context, g *Graph, fn func(ctx context.Context, r Resource) error) error {
	waves, err := g.Waves()
	if err != nil {
		return err
	}

	for _, wave := range waves {
		eg, egCtx := errgroup.WithContext(ctx)
		for _, r := range wave {
			eg.Go(func() error {
				return fn(egCtx, r)
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	return nil
}
