// Package validation 설정값과 프로비저닝 입력값에 대한 검증 함수를 제공합니다.
//
// 모든 함수는 검증에 실패하면 원인을 설명하는 error를 반환하고, 성공하면 nil을 반환합니다.
// go-playground/validator의 커스텀 규칙이나 CLI 입력 검사에서 직접 호출됩니다.
package validation
