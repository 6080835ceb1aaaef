package session

import "time"

// Greeting is the first assistant turn of every session.
const Greeting = "¡Hola! Soy SoroIA, tu asistente virtual del Museo Sorolla. ¿En qué puedo ayudarte? Puedo hablarte de la vida de Joaquín Sorolla, del Museo Sorolla o sobre cualquier objeto del museo."

const (
	DefaultMaxSessions = 1000
	DefaultTTL         = 30 * time.Minute
)
