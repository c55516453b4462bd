package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/darkkaiser/devops-info-service/internal/infra"
	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	"github.com/darkkaiser/devops-info-service/pkg/validation"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

// envPrefix 입력값을 덮어쓰는 환경 변수의 접두사입니다.
// 예: PROVISION_VM_NAME -> vm_name
const envPrefix = "PROVISION_"

// inputFlags 입력값과 관련된 전역 플래그입니다.
type inputFlags struct {
	configFile       string
	sshPublicKey     string
	sshPublicKeyFile string
	zone             string
	vmName           string
	serverType       string
	allowSSHFromCIDR string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configFile, "config", "", "입력값 JSON 파일 경로")
	pf.StringVar(&f.sshPublicKey, "ssh-public-key", "", "관리자 계정에 등록할 SSH 공개키 (authorized_keys 한 줄)")
	pf.StringVar(&f.sshPublicKeyFile, "ssh-public-key-file", "", "SSH 공개키 파일 경로 (예: ~/.ssh/id_ed25519.pub)")
	pf.StringVar(&f.zone, "zone", "", "Hetzner 로케이션 (fsn1, nbg1, hel1, ash, hil, sin)")
	pf.StringVar(&f.vmName, "vm-name", "", "가상 머신 이름")
	pf.StringVar(&f.serverType, "server-type", "", "서버 타입 (비어있으면 사양에 맞게 자동 선택)")
	pf.StringVar(&f.allowSSHFromCIDR, "allow-ssh-from", "", "SSH 접속을 허용할 IPv4 대역")

	cmd.MarkFlagsMutuallyExclusive("ssh-public-key", "ssh-public-key-file")
}

// loadInputs 기본값, 설정 파일, 환경 변수, 플래그 순으로 입력값을 병합합니다.
func (f *inputFlags) loadInputs() (infra.Inputs, error) {
	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(structs.Provider(infra.DefaultInputs(), "koanf"), nil); err != nil {
		return infra.Inputs{}, apperrors.Wrap(err, apperrors.System, "기본 입력값 로드에 실패했습니다")
	}

	// 2. JSON 파일 (명시적으로 지정한 경우 반드시 존재해야 함)
	if f.configFile != "" {
		if err := validation.ValidateFileExists(f.configFile); err != nil {
			return infra.Inputs{}, apperrors.Wrap(err, apperrors.NotFound, "입력값 파일을 찾을 수 없습니다")
		}
		if err := k.Load(file.Provider(f.configFile), json.Parser()); err != nil {
			return infra.Inputs{}, apperrors.Wrapf(err, apperrors.InvalidInput, "입력값 파일을 읽는 중 오류가 발생했습니다: '%s'", f.configFile)
		}
	}

	// 3. 환경 변수
	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return infra.Inputs{}, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 플래그 (최우선)
	overrides, err := f.overrides()
	if err != nil {
		return infra.Inputs{}, err
	}
	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return infra.Inputs{}, apperrors.Wrapf(err, apperrors.Internal, "플래그 값을 적용할 수 없습니다: %s", key)
		}
	}

	var in infra.Inputs
	if err := k.UnmarshalWithConf("", &in, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           &in,
			TagName:          "koanf",
		},
	}); err != nil {
		return infra.Inputs{}, apperrors.Wrap(err, apperrors.InvalidInput, "입력값을 해석할 수 없습니다")
	}

	return in, nil
}

// overrides 사용자가 지정한 플래그만 설정 키로 변환합니다.
func (f *inputFlags) overrides() (map[string]string, error) {
	out := make(map[string]string)

	set := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	set("ssh_public_key", f.sshPublicKey)
	set("zone", f.zone)
	set("vm_name", f.vmName)
	set("server_type", f.serverType)
	set("allow_ssh_from_cidr", f.allowSSHFromCIDR)

	if f.sshPublicKeyFile != "" {
		key, err := readPublicKeyFile(f.sshPublicKeyFile)
		if err != nil {
			return nil, err
		}
		out["ssh_public_key"] = key
	}

	return out, nil
}

func readPublicKeyFile(path string) (string, error) {
	if err := validation.ValidateFileExists(path); err != nil {
		return "", apperrors.Wrap(err, apperrors.NotFound, "SSH 공개키 파일을 찾을 수 없습니다")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.System, "SSH 공개키 파일을 읽을 수 없습니다: %s", path)
	}
	if strings.Contains(string(b), "PRIVATE KEY") {
		return "", apperrors.New(apperrors.InvalidInput, "SSH 개인키 파일이 지정되었습니다. 공개키(.pub) 파일을 지정하세요")
	}

	return strings.TrimSpace(string(b)), nil
}

// envKeyMapper PROVISION_VM_NAME 형식의 환경 변수를 vm_name 키로 변환합니다.
func envKeyMapper(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, envPrefix))
}

// declare 입력값을 읽어 리소스 그래프를 선언합니다.
func (f *inputFlags) declare() (*infra.Graph, error) {
	in, err := f.loadInputs()
	if err != nil {
		return nil, err
	}

	g, err := infra.Declare(in)
	if err != nil {
		if errors.Is(err, infra.ErrSSHPublicKeyRequired) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, "--ssh-public-key, --ssh-public-key-file 또는 PROVISION_SSH_PUBLIC_KEY로 공개키를 지정하세요")
		}
		return nil, err
	}
	return g, nil
}

// declareForDestroy 공개키 없이 삭제 대상 리소스 그래프를 선언합니다.
func (f *inputFlags) declareForDestroy() (*infra.Graph, error) {
	in, err := f.loadInputs()
	if err != nil {
		return nil, err
	}

	return infra.DeclareForDestroy(in)
}
