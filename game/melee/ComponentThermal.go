package melee

func (game MeleeGame) CastThermal(data interface{}) *Thermal {
	return data.(*Thermal)
}

// Thermal tracks cannon/chassis temperature; above the dangerous threshold
// the bot takes damage every tick until it cools down.
type Thermal struct {
	temperature float64
}

func NewThermal(temperature float64) *Thermal {
	return &Thermal{temperature: temperature}
}

func (thermal Thermal) GetTemperature() float64 {
	return thermal.temperature
}

func (thermal *Thermal) SetTemperature(temperature float64) {
	if temperature < 0 {
		temperature = 0
	}

	thermal.temperature = temperature
}

func (thermal *Thermal) AddHeat(heat float64) {
	thermal.SetTemperature(thermal.temperature + heat)
}
