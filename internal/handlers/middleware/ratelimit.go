package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/sisvot/sisvot-backend/internal/handlers/dto"
)

// LoginLimiter limita los intentos de login por IP de cliente con un
// token bucket por visitante. Solo protege el endpoint de login; el
// resto de la API no se limita.
type LoginLimiter struct {
	mu         sync.Mutex
	visitantes map[string]*visitante
	porMinuto  rate.Limit
	rafaga     int
}

type visitante struct {
	limiter *rate.Limiter
	visto   time.Time
}

// Tope de visitantes retenidos antes de podar los inactivos
const maxVisitantes = 1024

// NewLoginLimiter crea un limitador de intentosPorMinuto por IP
func NewLoginLimiter(intentosPorMinuto int) *LoginLimiter {
	if intentosPorMinuto < 1 {
		intentosPorMinuto = 1
	}
	return &LoginLimiter{
		visitantes: make(map[string]*visitante),
		porMinuto:  rate.Every(time.Minute / time.Duration(intentosPorMinuto)),
		rafaga:     intentosPorMinuto,
	}
}

// Limitar responde 429 cuando la IP agotó su cupo
func (l *LoginLimiter) Limitar() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.permitir(c.ClientIP()) {
			dto.ProblemaLimiteExcedido(c)
			return
		}
		c.Next()
	}
}

func (l *LoginLimiter) permitir(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	ahora := time.Now()

	if len(l.visitantes) >= maxVisitantes {
		l.podar(ahora)
	}

	v, ok := l.visitantes[ip]
	if !ok {
		v = &visitante{limiter: rate.NewLimiter(l.porMinuto, l.rafaga)}
		l.visitantes[ip] = v
	}
	v.visto = ahora

	return v.limiter.Allow()
}

// podar descarta visitantes sin actividad en la última hora y, si el
// mapa sigue lleno, expulsa a los vistos hace más tiempo (con lock tomado)
func (l *LoginLimiter) podar(ahora time.Time) {
	for ip, v := range l.visitantes {
		if ahora.Sub(v.visto) > time.Hour {
			delete(l.visitantes, ip)
		}
	}
	for len(l.visitantes) >= maxVisitantes {
		var masAntiguo string
		var visto time.Time
		for ip, v := range l.visitantes {
			if masAntiguo == "" || v.visto.Before(visto) {
				masAntiguo = ip
				visto = v.visto
			}
		}
		delete(l.visitantes, masAntiguo)
	}
}
