// Package cloudinit 가상 머신 최초 부팅 시 적용되는 cloud-init 설정 문서를 생성합니다.
package cloudinit

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// header cloud-init이 사용자 데이터를 cloud-config 형식으로 인식하기 위한 첫 줄
const header = "#cloud-config\n"

// DefaultPackages 부팅 시 설치하는 기본 패키지
var DefaultPackages = []string{"curl", "wget", "git", "vim"}

// DefaultMOTD /etc/motd에 기록되는 메시지
const DefaultMOTD = "VM provisioned by devops-provision for the DevOps course"

// Options 설정 문서를 생성하는 데 필요한 값입니다.
type Options struct {
	User         string
	SSHPublicKey string
	Packages     []string
	MOTD         string
}

// Config cloud-config 문서 구조입니다.
type Config struct {
	Users          []User   `json:"users" yaml:"users"`
	PackageUpdate  bool     `json:"package_update" yaml:"package_update"`
	PackageUpgrade bool     `json:"package_upgrade" yaml:"package_upgrade"`
	Packages       []string `json:"packages" yaml:"packages"`
	RunCmd         []string `json:"runcmd" yaml:"runcmd"`
}

// User 생성할 관리자 계정
type User struct {
	Name              string   `json:"name" yaml:"name"`
	Groups            string   `json:"groups" yaml:"groups"`
	Shell             string   `json:"shell" yaml:"shell"`
	Sudo              []string `json:"sudo" yaml:"sudo"`
	SSHAuthorizedKeys []string `json:"ssh_authorized_keys" yaml:"ssh_authorized_keys"`
}

// New Options로부터 Config를 구성합니다.
// Packages와 MOTD가 비어있으면 기본값을 사용합니다.
func New(opts Options) Config {
	packages := opts.Packages
	if len(packages) == 0 {
		packages = DefaultPackages
	}
	motd := opts.MOTD
	if motd == "" {
		motd = DefaultMOTD
	}

	return Config{
		Users: []User{{
			Name:              opts.User,
			Groups:            "sudo",
			Shell:             "/bin/bash",
			Sudo:              []string{"ALL=(ALL) NOPASSWD:ALL"},
			SSHAuthorizedKeys: []string{opts.SSHPublicKey},
		}},
		PackageUpdate:  true,
		PackageUpgrade: true,
		Packages:       packages,
		RunCmd: []string{
			fmt.Sprintf("echo %q > /etc/motd", motd),
		},
	}
}

// Render "#cloud-config" 헤더가 붙은 YAML 문서를 반환합니다.
func (c Config) Render() (string, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return "", fmt.Errorf("cloud-config 직렬화 실패: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("cloud-config 직렬화 실패: %w", err)
	}

	return buf.String(), nil
}

// Parse Render가 만든 문서를 다시 읽습니다.
func Parse(doc string) (Config, error) {
	body, ok := bytes.CutPrefix([]byte(doc), []byte(header))
	if !ok {
		return Config{}, fmt.Errorf("cloud-config 문서는 %q로 시작해야 합니다", header[:len(header)-1])
	}

	var c Config
	if err := yaml.Unmarshal(body, &c); err != nil {
		return Config{}, fmt.Errorf("cloud-config 파싱 실패: %w", err)
	}
	return c, nil
}
