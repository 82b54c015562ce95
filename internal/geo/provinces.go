// Package geo holds the closed list of Spanish provinces used to validate
// location filters.
package geo

import "strings"

// Provinces is the closed list of valid province names, in canonical form.
var Provinces = []string{
	"A Coruña", "Álava", "Albacete", "Alicante", "Almería", "Asturias",
	"Ávila", "Badajoz", "Barcelona", "Burgos", "Cáceres", "Cádiz",
	"Cantabria", "Castellón", "Ciudad Real", "Córdoba", "Cuenca", "Girona",
	"Granada", "Guadalajara", "Guipúzcoa", "Huelva", "Huesca", "Islas Baleares",
	"Jaén", "La Rioja", "Las Palmas", "León", "Lleida", "Lugo", "Madrid",
	"Málaga", "Murcia", "Navarra", "Ourense", "Palencia", "Pontevedra",
	"Salamanca", "Santa Cruz de Tenerife", "Segovia", "Sevilla", "Soria",
	"Tarragona", "Teruel", "Toledo", "Valencia", "Valladolid", "Vizcaya",
	"Zamora", "Zaragoza",
}

var byKey = func() map[string]string {
	m := make(map[string]string, len(Provinces))
	for _, p := range Provinces {
		m[key(p)] = p
	}
	return m
}()

// key folds case and common accented vowels so UI input like "cordoba"
// still resolves to the canonical name.
func key(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	r := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	)
	return r.Replace(s)
}

// Canonical resolves name to its canonical province spelling.
// The second return is false when the name is not a valid province.
func Canonical(name string) (string, bool) {
	p, ok := byKey[key(name)]
	return p, ok
}

// Valid reports whether name is a recognized province.
func Valid(name string) bool {
	_, ok := Canonical(name)
	return ok
}
