package neopixel

import "fmt"

// Status is the raw return code of a driver call. The values mirror ws2811_return_t.
type Status int

const (
	StatusSuccess       Status = 0
	StatusGeneric       Status = -1
	StatusOutOfMemory   Status = -2
	StatusHwNotSupport  Status = -3
	StatusMemLock       Status = -4
	StatusMmap          Status = -5
	StatusMapRegisters  Status = -6
	StatusGpioInit      Status = -7
	StatusPwmSetup      Status = -8
	StatusMailboxDevice Status = -9
	StatusDma           Status = -10
	StatusIllegalGpio   Status = -11
	StatusPcmSetup      Status = -12
	StatusSpiSetup      Status = -13
	StatusSpiTransfer   Status = -14
)

var statusDescriptions = map[Status]string{
	StatusSuccess:       "Success",
	StatusGeneric:       "Generic failure",
	StatusOutOfMemory:   "Out of memory",
	StatusHwNotSupport:  "Hardware revision is not supported",
	StatusMemLock:       "Memory lock failed",
	StatusMmap:          "mmap() failed",
	StatusMapRegisters:  "Unable to map registers into userspace",
	StatusGpioInit:      "Unable to initialize GPIO",
	StatusPwmSetup:      "Unable to initialize PWM",
	StatusMailboxDevice: "Failed to create mailbox device",
	StatusDma:           "DMA error",
	StatusIllegalGpio:   "Selected GPIO not possible",
	StatusPcmSetup:      "Unable to initialize PCM",
	StatusSpiSetup:      "Unable to initialize SPI",
	StatusSpiTransfer:   "SPI transfer error",
}

func (s Status) String() string {
	if d, ok := statusDescriptions[s]; ok {
		return d
	}
	return fmt.Sprintf("unknown status %d", int(s))
}

func (s Status) Ok() bool {
	return s == StatusSuccess
}
