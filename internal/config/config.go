package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "devops-info-service"

	// DefaultFilename 실행 디렉토리에서 탐색하는 선택적 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// envNestedPrefix 중첩 설정 키를 환경 변수로 덮어쓸 때 사용하는 접두사입니다.
	// 이중 언더스코어(__)는 계층 구분자(.)로 변환됩니다.
	// 예: INFO_SERVICE__DESCRIPTION -> service.description
	envNestedPrefix = "INFO_"
)

// flatEnvKeys 접두사 없이 그대로 사용하는 환경 변수와 설정 키의 매핑입니다.
var flatEnvKeys = map[string]string{
	"HOST":  "server.host",
	"PORT":  "server.port",
	"DEBUG": "debug",
}

// Load 기본 설정 파일과 환경 변수를 읽어 애플리케이션 설정을 로드합니다.
// 설정 파일이 없으면 기본값과 환경 변수만 사용합니다.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, ".env 파일을 읽는 중 오류가 발생했습니다")
	}

	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 기본값, 설정 파일, 환경 변수 순으로 설정을 병합하여 AppConfig 객체를 생성합니다.
// filename이 비어있거나 파일이 존재하지 않으면 파일 단계는 건너뜁니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 (선택)
	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수 (최우선)
	if err := k.Load(env.Provider("", ".", envKeyMapper), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (정의되지 않은 키는 에러)
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           &appConfig,
			TagName:          "json",
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증에 실패했습니다")
	}

	return &appConfig, nil
}

// envKeyMapper 환경 변수 이름을 koanf 설정 키로 변환합니다.
// 관심 대상이 아닌 환경 변수는 빈 문자열을 반환하여 무시합니다.
func envKeyMapper(name string) string {
	if key, ok := flatEnvKeys[name]; ok {
		return key
	}

	if rest, found := strings.CutPrefix(name, envNestedPrefix); found && rest != "" {
		return strings.ReplaceAll(strings.ToLower(rest), "__", ".")
	}

	return ""
}
