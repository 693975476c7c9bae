package decision

// Config holds the thresholds and weights of the decision engine. All
// fields are plain values so alternate parameterizations can be tested or
// loaded from configuration without touching the engine.
type Config struct {
	RSIOversold     float64 `yaml:"rsi_oversold"`
	RSIOverbought   float64 `yaml:"rsi_overbought"`
	MFIOversold     float64 `yaml:"mfi_oversold"`
	MFIOverbought   float64 `yaml:"mfi_overbought"`
	StochOversold   float64 `yaml:"stoch_oversold"`
	StochOverbought float64 `yaml:"stoch_overbought"`

	RSIWeight       float64 `yaml:"rsi_weight"`
	MACDWeight      float64 `yaml:"macd_weight"`
	BollingerWeight float64 `yaml:"bollinger_weight"`
	MFIWeight       float64 `yaml:"mfi_weight"`
	StochWeight     float64 `yaml:"stoch_weight"`
	MomentumWeight  float64 `yaml:"momentum_weight"`
	TrendAdjustment float64 `yaml:"trend_adjustment"`
}

// DefaultConfig returns the standard parameterization.
func DefaultConfig() Config {
	return Config{
		RSIOversold:     30,
		RSIOverbought:   70,
		MFIOversold:     20,
		MFIOverbought:   80,
		StochOversold:   20,
		StochOverbought: 80,

		RSIWeight:       1.0,
		MACDWeight:      1.2,
		BollingerWeight: 1.0,
		MFIWeight:       0.8,
		StochWeight:     0.9,
		MomentumWeight:  2.0,
		TrendAdjustment: 0.3,
	}
}
