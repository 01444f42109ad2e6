package birds

// Bird es el registro principal. Name se usa como clave natural para
// asociar avistamientos, aunque no hay unicidad a nivel de base.
type Bird struct {
	ID int64

	Name  string
	Color string

	Weight float64
	Height float64
}

// Filter: nil = no filtrar por ese campo.
type Filter struct {
	Name  *string
	Color *string
}

// Patch representa un update parcial: nil = no tocar.
type Patch struct {
	ID     int64
	Name   *string
	Color  *string
	Weight *float64
	Height *float64
}

// MergePatch aplica solo los campos presentes del patch sobre current.
func MergePatch(current Bird, p Patch) Bird {
	out := current
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Color != nil {
		out.Color = *p.Color
	}
	if p.Weight != nil {
		out.Weight = *p.Weight
	}
	if p.Height != nil {
		out.Height = *p.Height
	}
	return out
}
