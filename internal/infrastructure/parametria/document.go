package parametria

import "gopkg.in/yaml.v3"

// document refleja el archivo de parametría tal como se publica (YAML o JSON).
// Las claves conservan los nombres en español del archivo publicado.
type document struct {
	Version              string                       `yaml:"version"`
	ConfiguracionGeneral generalDoc                   `yaml:"configuracionGeneral"`
	TasasInteres         map[string]rateTableDoc      `yaml:"tasasInteres"`
	ProductosFNG         map[string]productDoc        `yaml:"productosFNG"`
	LeyMipyme            mipymeDoc                    `yaml:"leyMipyme"`
	ConsultaCentrales    bureauDoc                    `yaml:"consultaCentrales"`
	Modalidades          map[string]modalityDoc       `yaml:"modalidades"`
	Ubicaciones          map[string]map[string]string `yaml:"ubicaciones"`
	CedulasPermitidas    specialFundDoc               `yaml:"cedulasPermitidas"`
}

type generalDoc struct {
	SalarioMinimo   float64        `yaml:"salarioMinimo"`
	PlazoMinimo     int            `yaml:"plazoMinimo"`
	PlazoMaximo     int            `yaml:"plazoMaximo"`
	IVA             float64        `yaml:"iva"`
	SeguroVida      lifeDoc        `yaml:"seguroVida"`
	ModalidadesPago map[string]int `yaml:"modalidadesPago"`
}

type lifeDoc struct {
	TasaPorMil float64 `yaml:"tasaPorMil"`
}

type rangeDoc struct {
	Desde float64  `yaml:"desde"`
	Hasta *float64 `yaml:"hasta"`
}

type ratesDoc struct {
	MV float64 `yaml:"mv"`
	EA float64 `yaml:"ea"`
}

type rateTableDoc struct {
	Rangos []rateBandDoc `yaml:"rangos"`
}

// rateBandDoc: tipos puede ser lista, texto o mapa etiqueta -> tasas; se decodifica a mano.
type rateBandDoc struct {
	Rango rangeDoc  `yaml:"rango"`
	Tipos yaml.Node `yaml:"tipos"`
	Tasas *ratesDoc `yaml:"tasas"`
}

type boundsDoc struct {
	Minimo float64 `yaml:"minimo"`
	Maximo float64 `yaml:"maximo"`
}

type productDoc struct {
	Nombre                string             `yaml:"nombre"`
	TipoComision          string             `yaml:"tipoComision"`
	ComisionesPorPlazo    map[string]float64 `yaml:"comisionesPorPlazo"`
	ComisionMensual       float64            `yaml:"comisionMensual"`
	Montos                *boundsDoc         `yaml:"montos"`
	Plazos                *boundsDoc         `yaml:"plazos"`
	ModalidadesPermitidas []string           `yaml:"modalidadesPermitidas"`
	FormaPago             string             `yaml:"formaPago"`
	RequiereCedula        bool               `yaml:"requiereCedula"`
}

type mipymeDoc struct {
	RangosSMLV []mipymeBandDoc `yaml:"rangosSMLV"`
}

type mipymeBandDoc struct {
	Desde    float64  `yaml:"desde"`
	Hasta    *float64 `yaml:"hasta"`
	Comision float64  `yaml:"comision"`
}

type bureauDoc struct {
	RangosCredito []bureauBandDoc `yaml:"rangosCredito"`
}

type bureauBandDoc struct {
	Desde     float64  `yaml:"desde"`
	Hasta     *float64 `yaml:"hasta"`
	ValorSMLV float64  `yaml:"valorSMLV"`
}

type modalityDoc struct {
	Montos boundsDoc `yaml:"montos"`
}

type specialFundDoc struct {
	VigenciaHasta string `yaml:"vigenciaHasta"`
	Cedulas       map[string]struct {
		Fondo string `yaml:"fondo"`
	} `yaml:"cedulas"`
}
