package catalog

// ColumnImages holds the image reference list of a record.
const ColumnImages = "imagenes"

// ColumnInventory is the catalog primary key.
const ColumnInventory = "inventario"

// FieldSpec maps a column to its display label.
type FieldSpec struct {
	Column string
	Label  string
}

// FieldOrder is the display priority of record columns.
var FieldOrder = []FieldSpec{
	{Column: "titulo", Label: "Título"},
	{Column: "autor_a", Label: "Autor/a"},
	{Column: "inventario", Label: "Inventario"},
	{Column: "datacion", Label: "Datación"},
	{Column: "fecha_ano", Label: "Año"},
	{Column: "coleccion", Label: "Colección"},
	{Column: "clasificacion_generica", Label: "Clasificación Genérica"},
	{Column: "descripcion", Label: "Descripción"},
	{Column: "iconografia", Label: "Iconografía"},
	{Column: "clasificacion_razonada", Label: "Clasificación Razonada"},
	{Column: "historia_del_objeto", Label: "Historia del objeto"},
	{Column: "lugar_de_produccion_ceca", Label: "Lugar de Producción/Ceca"},
	{Column: "objeto_documento", Label: "Objeto/Documento"},
	{Column: "tecnica", Label: "Técnica"},
	{Column: "materia_soporte", Label: "Materia/soporte"},
	{Column: "dimensiones", Label: "Dimensiones"},
	{Column: "inscripciones_leyendas", Label: "Inscripciones/leyendas"},
	{Column: "firmas_marcas_etiquetas", Label: "Firmas/marcas/etiquetas"},
	{Column: "forma_de_ingreso", Label: "Forma de ingreso"},
	{Column: "imagenes", Label: "Imágenes"},
	{Column: "bibliografia", Label: "Bibliografía"},
}
