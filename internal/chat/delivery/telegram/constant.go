package telegram

const (
	sessionPrefix = "tg:"
	// maxPhotos caps the images sent for a single reply.
	maxPhotos = 5

	commandStart = "/start"
	commandHelp  = "/help"
	commandReset = "/reset"

	replyHelp = "Puedes preguntarme por la vida de Joaquín Sorolla, por el Museo Sorolla o por cualquier objeto de su colección.\n\n" +
		"Por ejemplo: \"¿Qué cuadros pintó Sorolla en 1909?\"\n\n" +
		"Usa /reset para empezar una conversación nueva."
	replyReset       = "He reiniciado la conversación."
	replyBusy        = "Todavía estoy respondiendo a tu mensaje anterior. Espera un momento, por favor."
	replyFailed      = "Se ha producido un error al generar la respuesta. Inténtalo de nuevo, por favor."
	artifactsHeader  = "Objetos relacionados:"
	inventoryCaption = "Inventario %s"
)
