// Package infra 실습용 가상 머신 한 대와 그 네트워크 환경을 리소스 그래프로 선언합니다.
//
// 이 패키지는 프로바이더 API를 직접 호출하지 않습니다. Declare가 만든 Graph는
// 순수한 데이터이며, Engine 구현체가 이를 평가하여 실제 리소스를 생성하고 Outputs를 돌려줍니다.
package infra

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/devops-info-service/internal/pkg/errors"
	"github.com/darkkaiser/devops-info-service/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// Inputs 리소스 그래프를 구성하는 입력값입니다.
// ssh_public_key를 제외한 모든 항목은 비어있으면 기본값이 적용됩니다.
type Inputs struct {
	Zone             string `json:"zone" koanf:"zone" yaml:"zone" validate:"oneof=fsn1 nbg1 hel1 ash hil sin"`
	VMName           string `json:"vm_name" koanf:"vm_name" yaml:"vm_name" validate:"resource_name"`
	VMUser           string `json:"vm_user" koanf:"vm_user" yaml:"vm_user" validate:"resource_name"`
	SSHPublicKey     string `json:"ssh_public_key" koanf:"ssh_public_key" yaml:"ssh_public_key"`
	VMCores          int    `json:"vm_cores" koanf:"vm_cores" yaml:"vm_cores" validate:"min=1"`
	VMMemory         int    `json:"vm_memory" koanf:"vm_memory" yaml:"vm_memory" validate:"min=1"`
	VMCoreFraction   int    `json:"vm_core_fraction" koanf:"vm_core_fraction" yaml:"vm_core_fraction" validate:"min=1,max=100"`
	DiskSize         int    `json:"disk_size" koanf:"disk_size" yaml:"disk_size" validate:"min=1"`
	DiskType         string `json:"disk_type" koanf:"disk_type" yaml:"disk_type" validate:"oneof=network-hdd network-ssd"`
	AllowSSHFromCIDR string `json:"allow_ssh_from_cidr" koanf:"allow_ssh_from_cidr" yaml:"allow_ssh_from_cidr" validate:"cidr4"`
	Image            string `json:"image" koanf:"image" yaml:"image" validate:"required"`
	ServerType       string `json:"server_type" koanf:"server_type" yaml:"server_type,omitempty"`
	NetworkCIDR      string `json:"network_cidr" koanf:"network_cidr" yaml:"network_cidr" validate:"cidr4"`
	SubnetCIDR       string `json:"subnet_cidr" koanf:"subnet_cidr" yaml:"subnet_cidr" validate:"cidr4"`
	Environment      string `json:"environment" koanf:"environment" yaml:"environment" validate:"resource_name"`
}

// DefaultInputs 기본값이 채워진 Inputs를 반환합니다. SSH 공개키는 기본값이 없습니다.
func DefaultInputs() Inputs {
	return Inputs{
		Zone:             "fsn1",
		VMName:           "devops-vm",
		VMUser:           "ubuntu",
		VMCores:          2,
		VMMemory:         1,
		VMCoreFraction:   20,
		DiskSize:         10,
		DiskType:         "network-hdd",
		AllowSSHFromCIDR: "0.0.0.0/0",
		Image:            "ubuntu-24.04",
		NetworkCIDR:      "10.128.0.0/9",
		SubnetCIDR:       "10.129.0.0/24",
		Environment:      "lab",
	}
}

// networkZones 로케이션이 속한 Hetzner 네트워크 존
var networkZones = map[string]string{
	"fsn1": "eu-central",
	"nbg1": "eu-central",
	"hel1": "eu-central",
	"ash":  "us-east",
	"hil":  "us-west",
	"sin":  "ap-southeast",
}

// NetworkZone Zone이 속한 네트워크 존을 반환합니다.
func (in Inputs) NetworkZone() string {
	return networkZones[in.Zone]
}

// WithDefaults 비어있는 항목에 기본값을 채운 사본을 반환합니다.
// 음수처럼 명시적으로 잘못된 값은 그대로 두어 검증 단계에서 거부되도록 합니다.
func (in Inputs) WithDefaults() Inputs {
	d := DefaultInputs()

	out := in
	out.SSHPublicKey = strings.TrimSpace(out.SSHPublicKey)
	dst := reflect.ValueOf(&out).Elem()
	src := reflect.ValueOf(d)
	for i := range dst.NumField() {
		if dst.Field(i).IsZero() {
			dst.Field(i).Set(src.Field(i))
		}
	}

	return out
}

// Validate 입력값을 검증합니다. 기본값이 적용된 Inputs에 대해 호출해야 합니다.
func (in Inputs) Validate() error {
	if in.SSHPublicKey == "" {
		return ErrSSHPublicKeyRequired
	}
	if _, err := validation.ValidateSSHPublicKey(in.SSHPublicKey); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "ssh_public_key 값이 올바르지 않습니다")
	}

	return in.validateFields()
}

// validateFields ssh_public_key를 제외한 항목을 검증합니다.
func (in Inputs) validateFields() error {
	if err := inputsValidator.Struct(in); err != nil {
		var validationErrors validator.ValidationErrors
		if apperrors.As(err, &validationErrors) {
			fe := validationErrors[0]
			return apperrors.Newf(apperrors.InvalidInput, "%s 값이 올바르지 않습니다: '%v' (조건: %s)", fe.Field(), fe.Value(), ruleText(fe))
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "입력값 검증에 실패했습니다")
	}

	if err := validation.ValidateCIDRWithin(in.SubnetCIDR, in.NetworkCIDR); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "subnet_cidr 값이 올바르지 않습니다")
	}

	return nil
}

func ruleText(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
}

var inputsValidator = newInputsValidator()

func newInputsValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	rules := map[string]validator.Func{
		"resource_name": func(fl validator.FieldLevel) bool {
			return validation.ValidateResourceName(fl.Field().String()) == nil
		},
		"cidr4": func(fl validator.FieldLevel) bool {
			_, err := validation.ValidateCIDR(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("'%s' 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return v
}
