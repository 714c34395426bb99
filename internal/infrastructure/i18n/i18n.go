package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"text/template"
)

// Claves de contexto compartidas entre el middleware de detección de
// idioma y los helpers de respuesta.
const (
	// LanguageContextKey guarda el idioma detectado en el contexto de Gin
	LanguageContextKey = "language"
	// ServiceContextKey guarda el servicio i18n en el contexto de Gin
	ServiceContextKey = "i18n_service"
)

// Service gestiona traducciones e internacionalización
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [idioma][clave]mensaje
	defaultLanguage string
}

// NewService crea un nuevo servicio de i18n
// localesDir: directorio con los archivos JSON de traducción
// defaultLang: idioma por defecto (fallback)
func NewService(localesDir, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		defaultLanguage: defaultLang,
	}

	// Cargar todos los archivos .json del directorio de locales
	files, err := filepath.Glob(filepath.Join(localesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", localesDir)
	}

	for _, file := range files {
		lang := filepath.Base(file)
		lang = lang[:len(lang)-5] // Quitar extensión .json

		data, err := os.ReadFile(file) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.translations[lang] = translations
	}

	// Verificar que el idioma por defecto existe
	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// T traduce una clave al idioma indicado
// Soporta interpolación de parámetros con templates Go ({{.Nombre}}, {{.Email}}, etc.)
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Buscar traducción en el idioma solicitado
	message := s.getTranslation(lang, key)

	// Si no se encontró, intentar con el idioma por defecto
	if message == "" {
		message = s.getTranslation(s.defaultLanguage, key)
	}

	// Si aún no se encontró, devolver la clave
	if message == "" {
		return key
	}

	if len(params) == 0 {
		return message
	}

	// Interpolar parámetros usando template
	tmpl, err := template.New("msg").Parse(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}

	return buf.String()
}

// getTranslation busca una traducción sin lock (uso interno)
func (s *Service) getTranslation(lang, key string) string {
	if langMap, ok := s.translations[lang]; ok {
		if msg, ok := langMap[key]; ok {
			return msg
		}
	}
	return ""
}

// GetDefaultLanguage retorna el idioma por defecto configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna la lista de idiomas soportados
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	return langs
}

// IsLanguageSupported verifica si un idioma está soportado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}
