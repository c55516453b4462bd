package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	"github.com/darkkaiser/devops-info-service/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator 커스텀 규칙이 등록된 Validator 인스턴스를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 구조체 필드명 대신 JSON 키 이름을 사용합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	})
	mustRegister(v, "bind_host", func(fl validator.FieldLevel) bool {
		return validation.ValidateHostname(fl.Field().String()) == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
	}
}

// checkStruct 구조체를 검증하고 첫 번째 위반 항목을 사용자 친화적인 메시지로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	fe := validationErrors[0]
	switch fe.Tag() {
	case "cors_origin":
		return newInvalidInputError(fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value()))
	case "bind_host":
		return newInvalidInputError(fmt.Sprintf("서버 바인딩 주소(server.host)가 올바르지 않습니다: '%v'", fe.Value()))
	}

	switch fe.StructField() {
	case "Port":
		return newInvalidInputError(fmt.Sprintf("서버 포트(server.port)는 1에서 65535 사이의 값이어야 합니다: '%v'", fe.Value()))
	case "AllowOrigins":
		return newInvalidInputError("CORS 허용 도메인(cors.allow_origins) 목록이 비어있습니다")
	}

	// Namespace: "AppConfig.service.name" -> "service.name"
	field := fe.Namespace()
	if _, after, found := strings.Cut(field, "."); found {
		field = after
	}

	return newInvalidInputError(fmt.Sprintf("%s 항목이 올바르지 않습니다: %s (조건: %s)", contextName, field, fe.Tag()))
}

func newInvalidInputError(message string) error {
	return apperrors.New(apperrors.InvalidInput, message)
}
