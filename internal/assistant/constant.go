package assistant

// Fixed replies
const (
	ReplyRejected        = "Lo siento, la pregunta no parece estar relacionada con el Museo Sorolla o Joaquín Sorolla."
	ReplyInvalidQuery    = "Lo siento, no he podido generar una consulta válida para tu pregunta."
	ReplyExecutionFailed = "Error al procesar la consulta SQL: %s"
	ReplyRetrievalFailed = "Lo siento, ahora mismo no puedo consultar la documentación del museo."
	ReplyGenericError    = "Se ha producido un error al generar la respuesta. Inténtalo de nuevo, por favor."
)

// Debug turn templates
const (
	debugClassification = "Clasificación: %s"
	debugQuery          = "SQL generado:\n%s"
	debugDocuments      = "Documentos obtenidos:\n%s"
)

const DefaultHistoryPairs = 2

const (
	LogPrefixHandleTurn = "internal.assistant.HandleTurn"
	tracerName          = "soroia/internal/assistant"
	spanTurn            = "assistant.turn"
)
