//go:build tinygo && baremetal

package hal

import "machine"

// Board wiring on a Raspberry Pi Pico with a 1.44" ST7735 panel and a
// joystick/microphone breakout.
const (
	pinLCDSCK = machine.GP18
	pinLCDSDO = machine.GP19
	pinLCDCS  = machine.GP17
	pinLCDDC  = machine.GP20
	pinLCDRST = machine.GP21
	pinLCDBL  = machine.GP22

	pinButtonLeft   = machine.GP14
	pinButtonRight  = machine.GP15
	pinButtonSelect = machine.GP16

	pinBuzzer = machine.GP2
)

type tinyGoHAL struct {
	logger *uartLogger
	lamp   *pwmLamp
	fb     *st7735Framebuffer
	input  tinyGoInput
	analog *adcAnalog
	buzzer *pinBuzzer
	t      *tinyGoTime
}

// New returns the Pico HAL.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	fb, err := newST7735Framebuffer()
	if err != nil {
		logger.WriteLineString("hal: lcd: " + err.Error())
	}

	analog := newADCAnalog()
	return &tinyGoHAL{
		logger: logger,
		lamp:   newPWMLamp(machine.LED),
		fb:     fb,
		input: tinyGoInput{
			kbd:     &stubKeyboard{},
			stick:   adcStick{a: analog},
			buttons: newPinButtons(pinButtonLeft, pinButtonRight, pinButtonSelect),
		},
		analog: analog,
		buzzer: newPinBuzzer(pinBuzzer),
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.lamp }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return h.input }
func (h *tinyGoHAL) Analog() Analog   { return h.analog }
func (h *tinyGoHAL) PWM() PWM         { return h.lamp }
func (h *tinyGoHAL) Buzzer() Buzzer   { return h.buzzer }
func (h *tinyGoHAL) Time() Time       { return h.t }
