package dto

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Creador construye el modelo a insertar a partir de un cuerpo de
// creación ya validado. Los campos asignados por el servidor (clave
// primaria, bandera de borrado lógico, marcas de tiempo) nunca forman
// parte del cuerpo: los pone la capa de persistencia.
type Creador[T any] interface {
	Modelo() *T
}

// Actualizador produce el mapa columna→valor con únicamente los campos
// presentes en un cuerpo de actualización parcial.
type Actualizador interface {
	Campos() map[string]any
}

// Formatos de documentos venezolanos
var (
	cedulaRegexp = regexp.MustCompile(`^[VvEe]?-?\d{6,9}$`)
	rifRegexp    = regexp.MustCompile(`^[JGVEPjgvep]-?\d{8}-?\d$`)
)

// RegistrarValidadores registra los validadores propios (cedula, rif) en
// el motor de binding de Gin y hace que los errores de campo usen el
// nombre JSON en lugar del nombre del struct Go.
func RegistrarValidadores() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("cedula", func(fl validator.FieldLevel) bool {
		return cedulaRegexp.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("rif", func(fl validator.FieldLevel) bool {
		return rifRegexp.MatchString(fl.Field().String())
	})
}

// ErroresDeCampo convierte un error de binding en la lista de campos
// violados. La validación falla cerrada: cualquier campo requerido
// ausente o mal tipado rechaza el cuerpo completo.
func ErroresDeCampo(err error) []ErrorCampo {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}

	out := make([]ErrorCampo, 0, len(vErrs))
	for _, fe := range vErrs {
		out = append(out, ErrorCampo{
			Campo:   fe.Field(),
			Mensaje: mensajeDeCampo(fe),
			Tag:     fe.Tag(),
		})
	}
	return out
}

func mensajeDeCampo(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "el campo es obligatorio"
	case "email":
		return "debe ser un email válido"
	case "min":
		return "es demasiado corto (mínimo " + fe.Param() + ")"
	case "max":
		return "es demasiado largo (máximo " + fe.Param() + ")"
	case "gte":
		return "debe ser mayor o igual a " + fe.Param()
	case "datetime":
		return "debe tener el formato " + fe.Param()
	case "cedula":
		return "debe ser una cédula válida"
	case "rif":
		return "debe ser un RIF válido"
	default:
		return "valor inválido (" + fe.Tag() + ")"
	}
}
