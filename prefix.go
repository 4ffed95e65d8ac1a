package si

// Decimal prefix markers. KiloDim (in marker.go) is the only
// primitive; all the others are composed from it and ScalarDim, so
// their prefix exponents are derived rather than restated.
type (
	MegaDim  = Prod[KiloDim, KiloDim]
	GigaDim  = Prod[MegaDim, KiloDim]
	TeraDim  = Prod[GigaDim, KiloDim]
	PetaDim  = Prod[TeraDim, KiloDim]
	ExaDim   = Prod[PetaDim, KiloDim]
	ZettaDim = Prod[ExaDim, KiloDim]
	YottaDim = Prod[ZettaDim, KiloDim]

	MilliDim = Quot[ScalarDim, KiloDim]
	MicroDim = Quot[MilliDim, KiloDim]
	NanoDim  = Quot[MicroDim, KiloDim]
	PicoDim  = Quot[NanoDim, KiloDim]
	FemtoDim = Quot[PicoDim, KiloDim]
	AttoDim  = Quot[FemtoDim, KiloDim]
	ZeptoDim = Quot[AttoDim, KiloDim]
	YoctoDim = Quot[ZeptoDim, KiloDim]
)

// Prefix constructors. Each builds a dimensionless quantity at the
// named scale, for use as a multiplier: Mul(Kilo(2), Meters(1)) is
// two kilometers.

func Kilo(v Float) Quantity[Float, KiloDim] { return Of[KiloDim](v) }
func Mega(v Float) Quantity[Float, MegaDim] { return Of[MegaDim](v) }
func Giga(v Float) Quantity[Float, GigaDim] { return Of[GigaDim](v) }
func Tera(v Float) Quantity[Float, TeraDim] { return Of[TeraDim](v) }
func Peta(v Float) Quantity[Float, PetaDim] { return Of[PetaDim](v) }
func Exa(v Float) Quantity[Float, ExaDim] { return Of[ExaDim](v) }
func Zetta(v Float) Quantity[Float, ZettaDim] { return Of[ZettaDim](v) }
func Yotta(v Float) Quantity[Float, YottaDim] { return Of[YottaDim](v) }
func Milli(v Float) Quantity[Float, MilliDim] { return Of[MilliDim](v) }
func Micro(v Float) Quantity[Float, MicroDim] { return Of[MicroDim](v) }
func Nano(v Float) Quantity[Float, NanoDim] { return Of[NanoDim](v) }
func Pico(v Float) Quantity[Float, PicoDim] { return Of[PicoDim](v) }
func Femto(v Float) Quantity[Float, FemtoDim] { return Of[FemtoDim](v) }
func Atto(v Float) Quantity[Float, AttoDim] { return Of[AttoDim](v) }
func Zepto(v Float) Quantity[Float, ZeptoDim] { return Of[ZeptoDim](v) }
func Yocto(v Float) Quantity[Float, YoctoDim] { return Of[YoctoDim](v) }
