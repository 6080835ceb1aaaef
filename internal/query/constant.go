package query

// Log prefixes
const (
	LogPrefixSynthesize = "internal.query.Synthesize"
)

// Table is the only relation generated queries may read.
const Table = "fichas_raw"

// Dialects accepted by New.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Generation parameters
const (
	SynthesisTemperature = 0.0
	SynthesisMaxTokens   = 512
	SynthesisTopP        = 1.0
)

// PromptSynthesize placeholders: match policy, conversation context, question.
const PromptSynthesize = `Escribe una consulta SQL que responda a la pregunta del usuario usando la tabla ` + "`fichas_raw`" + `, con estas columnas:
- inventario
- coleccion (mobiliario, cartas, escultura, textiles, pintura, fotografia, dibujo, joyeria, ceramica)
- contexto_cultural_estilo
- dimensiones
- iconografia
- historia_del_objeto
- lugar_de_produccion_ceca
- componentes
- tecnica
- conjunto
- titulo
- autor_a
- bibliografia
- descripcion
- lugar_de_procedencia
- nombre_especifico
- clasificacion_razonada
- materia_soporte
- imagenes
- forma_de_ingreso
- firmas_marcas_etiquetas
- datacion (datación aproximada)
- fecha_ano (año de datación)
- inscripciones_leyendas
- objeto_documento
- clasificacion_generica

Reglas:
- %s
- En búsquedas por tema o contenido las palabras clave suelen estar en ` + "`descripcion`, `clasificacion_razonada` e `historia_del_objeto`" + `, aunque otras columnas como ` + "`lugar_de_produccion_ceca` o `tecnica`" + ` parezcan relevantes: muchas veces están vacías. Da prioridad a estos campos largos.
- Un número que no parezca una fecha se refiere probablemente al ` + "`inventario`" + `.
- Salvo que el usuario pida otra cosa, limita el resultado a 10 filas.
- Al filtrar por una columna, exige valores no nulos.
- Si hacen falta ambos, pon GROUP BY antes de LIMIT.
- No uses ` + "`DELETE`, `UPDATE`, `INSERT`, `DROP` ni `CREATE`" + `.
- Usa únicamente las columnas indicadas.

Contexto de la conversación anterior (opcional): %s
Pregunta del usuario: %s

Devuelve solo el texto de la consulta SQL, sin comentarios, sin formato y sin bloques de código.`

// Match policies per dialect.
const (
	matchPolicyPostgres = "Los textos están en minúsculas y sin tildes. Usa `ILIKE` con `%` para coincidencias aproximadas."
	matchPolicySQLite   = "Los textos están en minúsculas y sin tildes. Usa `LIKE` con `%` para coincidencias aproximadas."
)

// deniedWords may not appear outside literals in a generated query.
var deniedWords = map[string]struct{}{
	"INSERT": {}, "UPDATE": {}, "DELETE": {}, "DROP": {}, "CREATE": {}, "ALTER": {},
	"TRUNCATE": {}, "GRANT": {}, "REVOKE": {}, "MERGE": {}, "COPY": {}, "CALL": {},
	"EXEC": {}, "EXECUTE": {}, "VACUUM": {}, "ATTACH": {}, "DETACH": {}, "PRAGMA": {},
	"COMMENT": {}, "INTO": {}, "LOCK": {}, "REINDEX": {}, "SET": {},
	"RESET": {}, "LISTEN": {}, "NOTIFY": {}, "DO": {}, "PREPARE": {}, "DEALLOCATE": {},
	"ANALYZE": {}, "CLUSTER": {}, "REFRESH": {}, "SECURITY": {}, "BEGIN": {}, "COMMIT": {},
	"ROLLBACK": {}, "SAVEPOINT": {},
	"PG_SLEEP": {}, "PG_READ_FILE": {}, "PG_READ_BINARY_FILE": {}, "PG_LS_DIR": {},
	"PG_TERMINATE_BACKEND": {}, "PG_CANCEL_BACKEND": {}, "SET_CONFIG": {},
	"LO_IMPORT": {}, "LO_EXPORT": {}, "DBLINK": {}, "LOAD_EXTENSION": {},
}

// subqueryOpeners are words after which "(" starts a subquery rather than a call.
var subqueryOpeners = map[string]struct{}{
	"FROM": {}, "JOIN": {}, "IN": {}, "EXISTS": {}, "ANY": {}, "ALL": {}, "SOME": {},
	"AS": {}, "UNION": {}, "INTERSECT": {}, "EXCEPT": {}, "AND": {}, "OR": {}, "NOT": {},
	"WHERE": {}, "SELECT": {}, "ON": {}, "HAVING": {}, "THEN": {}, "ELSE": {}, "WHEN": {},
}
