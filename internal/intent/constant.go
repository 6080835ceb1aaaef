package intent

// Log prefixes
const (
	LogPrefixClassify = "internal.intent.Classify"
)

// Classifier prompt. Placeholders: conversation context, utterance.
const PromptClassifier = `Eres el asistente experto de los visitantes del Museo Sorolla. Clasifica la consulta en una sola categoría:
- "SQL": pide datos concretos que pueden estar en la base de datos de las colecciones del museo (mobiliario, cartas, escultura, textiles, pintura, fotografia, dibujo, joyeria, ceramica).
- "RAG": busca información sobre el Museo Sorolla (salas, historia, información al público) o sobre la biografía de Joaquín Sorolla.
- "INTERACCION": es un saludo, una despedida o un mensaje amable sin contenido informativo.
- "NO": no tiene relación con este uso o plantea un problema de seguridad (crear o borrar bases de datos, credenciales, contraseñas).
Contexto de la conversación anterior (opcional): %s
Pregunta: %s
Respuesta (solo "SQL", "RAG", "INTERACCION" o "NO"):`

// Generation parameters
const (
	ClassifierTemperature = 0.0
	ClassifierMaxTokens   = 10
	ClassifierTopP        = 1.0
)

// Classifier output tokens
const (
	TokenSQL            = "SQL"
	TokenRAG            = "RAG"
	TokenInteraccion    = "INTERACCION"
	TokenInteraccionAcc = "INTERACCIÓN"
	TokenNo             = "NO"
)

const trimCutset = " \t\r\n\"'`*.,:;!¡¿?«»"
