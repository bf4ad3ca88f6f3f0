package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"wallet-policy-core/pkg/bip32"
)

// Init 在 gin 默认的校验器上注册自定义规则
func Init() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return v.RegisterValidation("network", validateNetwork)
}

// validateNetwork 只允许 "main" / "test"
func validateNetwork(fl validator.FieldLevel) bool {
	_, err := bip32.ParseNetwork(fl.Field().String())
	return err == nil
}

// GetErrorMsg translates validation errors into user-friendly messages
func GetErrorMsg(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var errMsgs []string
		for _, e := range validationErrors {
			field := e.Field()
			tag := e.Tag()
			param := e.Param()

			switch tag {
			case "required":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 不能为空", field))
			case "hexadecimal":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 必须是 Hex 字符串", field))
			case "min":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 长度至少为 %s", field, param))
			case "max":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 长度不能超过 %s", field, param))
			case "oneof":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 必须是 [%s] 之一", field, param))
			case "network":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 必须是 [%s %s] 之一", field, bip32.NetworkMain, bip32.NetworkTest))
			default:
				errMsgs = append(errMsgs, fmt.Sprintf("%s 校验失败 (%s)", field, tag))
			}
		}
		return strings.Join(errMsgs, "; ")
	}
	return "请求参数错误"
}
