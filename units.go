package si

// Derived dimension markers, each defined as the composition its unit
// is defined by rather than by restating exponents, so the marker
// algebra itself vouches for them. Because these are type aliases,
// arithmetic that spells the same composition produces identical
// types: Div(Scalar(1), Seconds(2)) is a Frequency.
type (
	AreaDim        = Prod[MeterDim, MeterDim]
	VolumeDim      = Prod[MeterDim, AreaDim]
	TimeSqDim      = Prod[SecondDim, SecondDim]
	MassSqDim      = Prod[KilogramDim, KilogramDim]
	ForceDim       = Quot[Quot[Prod[MeterDim, KilogramDim], SecondDim], SecondDim]
	ForceSqDim     = Prod[ForceDim, ForceDim]
	FrequencyDim   = Quot[ScalarDim, SecondDim]
	PressureDim    = Quot[ForceDim, AreaDim]
	EnergyDim      = Prod[ForceDim, MeterDim]
	PowerDim       = Quot[EnergyDim, SecondDim]
	ChargeDim      = Prod[AmpereDim, SecondDim]
	VoltageDim     = Quot[PowerDim, AmpereDim]
	CapacitanceDim = Quot[ChargeDim, VoltageDim]
	ResistanceDim  = Quot[VoltageDim, AmpereDim]
	ConductanceDim = Quot[AmpereDim, VoltageDim]
	FluxDim        = Prod[VoltageDim, SecondDim]
	FluxDensityDim = Quot[FluxDim, AreaDim]
	InductanceDim  = Quot[FluxDim, AmpereDim]
)

// Quantity types over the default storage. The types are named for
// the physical dimension; the units name the constructors below.
type (
	Dimless           = Quantity[Float, ScalarDim]
	Length            = Quantity[Float, MeterDim]
	Time              = Quantity[Float, SecondDim]
	Mass              = Quantity[Float, KilogramDim]
	Current           = Quantity[Float, AmpereDim]
	Temperature       = Quantity[Float, KelvinDim]
	Amount            = Quantity[Float, MoleDim]
	LuminousIntensity = Quantity[Float, CandelaDim]

	Area        = Quantity[Float, AreaDim]
	Volume      = Quantity[Float, VolumeDim]
	TimeSq      = Quantity[Float, TimeSqDim]
	MassSq      = Quantity[Float, MassSqDim]
	Force       = Quantity[Float, ForceDim]
	ForceSq     = Quantity[Float, ForceSqDim]
	Frequency   = Quantity[Float, FrequencyDim]
	Pressure    = Quantity[Float, PressureDim]
	Energy      = Quantity[Float, EnergyDim]
	Power       = Quantity[Float, PowerDim]
	Charge      = Quantity[Float, ChargeDim]
	Voltage     = Quantity[Float, VoltageDim]
	Capacitance = Quantity[Float, CapacitanceDim]
	Resistance  = Quantity[Float, ResistanceDim]
	Conductance = Quantity[Float, ConductanceDim]
	Flux        = Quantity[Float, FluxDim]
	FluxDensity = Quantity[Float, FluxDensityDim]
	Inductance  = Quantity[Float, InductanceDim]
)

// Scalar constructs a dimensionless quantity at prefix zero.
func Scalar(v Float) Dimless { return Of[ScalarDim](v) }

// Constructors for the base units.

func Meters(v Float) Length { return Of[MeterDim](v) }
func Seconds(v Float) Time { return Of[SecondDim](v) }
func Kilograms(v Float) Mass { return Of[KilogramDim](v) }
func Amperes(v Float) Current { return Of[AmpereDim](v) }
func Kelvin(v Float) Temperature { return Of[KelvinDim](v) }
func Moles(v Float) Amount { return Of[MoleDim](v) }
func Candela(v Float) LuminousIntensity { return Of[CandelaDim](v) }

// Constructors for the derived units.

func MetersSq(v Float) Area { return Of[AreaDim](v) }
func MetersCu(v Float) Volume { return Of[VolumeDim](v) }
func SecondsSq(v Float) TimeSq { return Of[TimeSqDim](v) }
func KilogramsSq(v Float) MassSq { return Of[MassSqDim](v) }
func Newtons(v Float) Force { return Of[ForceDim](v) }
func NewtonsSq(v Float) ForceSq { return Of[ForceSqDim](v) }
func Hertz(v Float) Frequency { return Of[FrequencyDim](v) }
func Pascals(v Float) Pressure { return Of[PressureDim](v) }
func Joules(v Float) Energy { return Of[EnergyDim](v) }
func Watts(v Float) Power { return Of[PowerDim](v) }
func Coulombs(v Float) Charge { return Of[ChargeDim](v) }
func Volts(v Float) Voltage { return Of[VoltageDim](v) }
func Farads(v Float) Capacitance { return Of[CapacitanceDim](v) }
func Ohms(v Float) Resistance { return Of[ResistanceDim](v) }
func Siemens(v Float) Conductance { return Of[ConductanceDim](v) }
func Webers(v Float) Flux { return Of[FluxDim](v) }
func Tesla(v Float) FluxDensity { return Of[FluxDensityDim](v) }
func Henry(v Float) Inductance { return Of[InductanceDim](v) }
