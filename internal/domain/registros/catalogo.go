package registros

// Padre describe el filtro por entidad padre de un recurso:
// GET /api/{recurso}/{ruta}/:id filtra por la columna indicada.
type Padre struct {
	Ruta    string // segmento de ruta, p.ej. "estado"
	Columna string // columna de la clave foránea, p.ej. "id_estado"
}

// Descriptor parametriza el repositorio y el handler CRUD genéricos
// para una entidad. Es el único metadato por entidad: todo lo demás
// (validación, forma del registro) vive en los DTOs y el modelo.
type Descriptor struct {
	Recurso string // segmento de ruta bajo /api, p.ej. "estados"
	Nombre  string // nombre legible para logs y mensajes de error
	PK      string // columna de la clave primaria
	Padre   *Padre // nil si la entidad no expone filtro por padre
}

// Catálogo de descriptores, uno por entidad gestionada.
var (
	DescEstado = Descriptor{Recurso: "estados", Nombre: "Estado", PK: "id_estado"}

	DescMunicipio = Descriptor{Recurso: "municipios", Nombre: "Municipio", PK: "id_municipio",
		Padre: &Padre{Ruta: "estado", Columna: "id_estado"}}

	DescParroquia = Descriptor{Recurso: "parroquias", Nombre: "Parroquia", PK: "id_parroquia",
		Padre: &Padre{Ruta: "municipio", Columna: "id_municipio"}}

	DescComunidad = Descriptor{Recurso: "comunidades", Nombre: "Comunidad", PK: "id_comunidad",
		Padre: &Padre{Ruta: "parroquia", Columna: "id_parroquia"}}

	DescUbicacion = Descriptor{Recurso: "ubicaciones", Nombre: "Ubicación", PK: "id_ubicacion",
		Padre: &Padre{Ruta: "comunidad", Columna: "id_comunidad"}}

	DescPersonal = Descriptor{Recurso: "personal", Nombre: "Personal", PK: "id_personal"}

	DescCentroVotacion = Descriptor{Recurso: "centros-votacion", Nombre: "Centro de Votación", PK: "id_centro",
		Padre: &Padre{Ruta: "ubicacion", Columna: "id_ubicacion"}}

	DescEvento = Descriptor{Recurso: "eventos", Nombre: "Evento", PK: "id_evento",
		Padre: &Padre{Ruta: "centro", Columna: "id_centro"}}

	DescAfluencia = Descriptor{Recurso: "afluencia", Nombre: "Afluencia", PK: "id_afluencia",
		Padre: &Padre{Ruta: "evento", Columna: "id_evento"}}

	DescComuna = Descriptor{Recurso: "comunas", Nombre: "Comuna", PK: "id_comuna"}

	DescProyecto = Descriptor{Recurso: "proyectos", Nombre: "Proyecto", PK: "id_proyecto",
		Padre: &Padre{Ruta: "comuna", Columna: "id_comuna"}}

	DescTComunal = Descriptor{Recurso: "t-comunal", Nombre: "Tabla Comunal", PK: "id_tcomunal",
		Padre: &Padre{Ruta: "evento", Columna: "id_evento"}}

	DescEventoCC = Descriptor{Recurso: "eventocc", Nombre: "Evento CC", PK: "id_eventocc",
		Padre: &Padre{Ruta: "evento", Columna: "id_evento"}}

	DescConsejoComunal = Descriptor{Recurso: "consejos-comunales", Nombre: "Consejo Comunal", PK: "id_consejo",
		Padre: &Padre{Ruta: "comunidad", Columna: "id_comunidad"}}

	DescRol = Descriptor{Recurso: "roles", Nombre: "Rol", PK: "id_rol"}

	DescUsuario = Descriptor{Recurso: "users", Nombre: "Usuario", PK: "id_usuario"}
)
