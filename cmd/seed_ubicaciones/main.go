// seed_ubicaciones genera la sección ubicaciones de la parametría (departamento -> municipio ->
// tipología) a partir del XML oficial Municipios.xml de la DIAN y un CSV de ruralidad.
//
// Uso: go run ./cmd/seed_ubicaciones [ruta/Municipios.xml] [ruta/ruralidad.csv]
// El CSV trae código DANE y categoría de ruralidad (codigo,categoria). Los municipios que no
// aparecen en el CSV quedan como URBANO.
// Escribe: configs/ubicaciones.yaml, para pegar en configs/parametria.yaml.
package main

import (
	"encoding/csv"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

const (
	typologyUrban = "URBANO"
	typologyRural = "RURAL"
)

type parametros struct {
	Tabla struct {
		Valores []valor `xml:"valor"`
	} `xml:"tabla"`
}

type valor struct {
	Cod    string `xml:"cod,attr"`
	Nombre string `xml:"nombre,attr"`
	Otro   struct {
		Codigo string `xml:"codigo,attr"`
		Valor  string `xml:"valor,attr"`
	} `xml:"otro"`
}

type municipio struct {
	cod, nombre, departamento string
}

type ubicacionesDoc struct {
	Ubicaciones map[string]map[string]string `yaml:"ubicaciones"`
}

func main() {
	xmlPath, csvPath := "Municipios.xml", "ruralidad.csv"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		csvPath = os.Args[2]
	}

	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	municipios, err := readMunicipios(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	rural := map[string]bool{}
	if c, err := os.Open(csvPath); err == nil {
		rural, err = readRurality(c)
		c.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer CSV de ruralidad: %v\n", err)
			os.Exit(1)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Abrir CSV de ruralidad: %v\n", err)
		os.Exit(1)
	} else {
		fmt.Fprintf(os.Stderr, "Sin %s: todos los municipios quedan URBANO\n", csvPath)
	}

	doc := buildUbicaciones(municipios, rural)

	outPath := filepath.Join(findModuleRoot(), "configs", "ubicaciones.yaml")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("# Departamentos y municipios Colombia con tipología URBANO/RURAL\n")
	out.WriteString("# Generado desde Municipios.xml (DIAN) y categorías de ruralidad (DNP)\n")
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir YAML: %v\n", err)
		os.Exit(1)
	}
	enc.Close()

	total := 0
	for _, m := range doc.Ubicaciones {
		total += len(m)
	}
	fmt.Printf("Generado %s: %d departamentos, %d municipios\n", outPath, len(doc.Ubicaciones), total)
}

// readMunicipios decodifica Municipios.xml; el archivo oficial viene en ISO-8859-1.
func readMunicipios(r io.Reader) ([]municipio, error) {
	var p parametros
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}

	var out []municipio
	for _, v := range p.Tabla.Valores {
		if v.Cod == "" || v.Nombre == "" || v.Otro.Valor == "" {
			continue
		}
		out = append(out, municipio{
			cod:          strings.TrimSpace(v.Cod),
			nombre:       strings.TrimSpace(v.Nombre),
			departamento: strings.TrimSpace(v.Otro.Valor),
		})
	}
	return out, nil
}

// readRurality lee codigo,categoria. "Rural" y "Rural disperso" cuentan como RURAL.
func readRurality(r io.Reader) (map[string]bool, error) {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = 2
	rd.TrimLeadingSpace = true

	out := map[string]bool{}
	first := true
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if first {
			first = false
			if strings.EqualFold(rec[0], "codigo") {
				continue
			}
		}
		if strings.HasPrefix(normalizeName(rec[1]), typologyRural) {
			out[strings.TrimSpace(rec[0])] = true
		}
	}
}

func buildUbicaciones(municipios []municipio, rural map[string]bool) ubicacionesDoc {
	doc := ubicacionesDoc{Ubicaciones: map[string]map[string]string{}}
	for _, m := range municipios {
		dept := normalizeName(m.departamento)
		if doc.Ubicaciones[dept] == nil {
			doc.Ubicaciones[dept] = map[string]string{}
		}
		typology := typologyUrban
		if rural[m.cod] {
			typology = typologyRural
		}
		doc.Ubicaciones[dept][normalizeName(m.nombre)] = typology
	}
	return doc
}

// normalizeName lleva el nombre a la forma de las claves de la parametría: mayúsculas, sin
// tildes (la Ñ se conserva), separadores como guion bajo. "Bogotá, D.C." -> "BOGOTA_DC".
func normalizeName(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		switch {
		case r == 'Ñ':
		case unicode.IsLetter(r):
			r = []rune(norm.NFD.String(string(r)))[0]
		case unicode.IsDigit(r):
		case unicode.IsSpace(r) || r == '-' || r == ',':
			pendingSep = b.Len() > 0
			continue
		default:
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
