package class

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

var (
	subjectTag  = "subject"
	subjectText = "unknown subject"

	semesterTag  = "semester"
	semesterText = "semester must be one of Fall, Spring or Summer"
)

// InitValidators registers the class validations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(subjectTag, oneOfValidation(Subjects))
	core.RegisterCustomTranslation(validate, translator, subjectTag, subjectText)

	_ = validate.RegisterValidation(semesterTag, oneOfValidation(Semesters))
	core.RegisterCustomTranslation(validate, translator, semesterTag, semesterText)
}

func oneOfValidation(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		for _, a := range allowed {
			if val == a {
				return true
			}
		}
		return false
	}
}
