package audio

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"
)

// lookPath and statPath are swapped in tests
var (
	lookPath = exec.LookPath
	statPath = os.Stat
)

// ossDevice is written directly on FreeBSD when no CLI player exists
const ossDevice = "/dev/dsp"

// cliPlayer is one candidate CLI player reading s16le stereo from stdin
type cliPlayer struct {
	typ  BackendType
	name string
	bin  string
	args func(rate string) []string
}

// cliPlayers is searched in order; the first binary found on PATH wins
var cliPlayers = []cliPlayer{
	{BackendPulse, "pacat", "pacat", func(rate string) []string {
		return []string{"--raw", "--format=s16le", "--rate=" + rate, "--channels=2", "--latency-msec=50", "--playback"}
	}},
	{BackendPipeWire, "pw-cat", "pw-cat", func(rate string) []string {
		return []string{"--playback", "--format=s16", "--rate=" + rate, "--channels=2", "--latency=50ms", "-"}
	}},
	{BackendALSA, "aplay", "aplay", func(rate string) []string {
		return []string{"-t", "raw", "-f", "S16_LE", "-r", rate, "-c", "2", "-q"}
	}},
	{BackendSoX, "sox", "play", func(rate string) []string {
		return []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", rate, "-", "-d", "-q"}
	}},
	{BackendFFplay, "ffplay", "ffplay", func(rate string) []string {
		return []string{
			"-nodisp", "-autoexit",
			"-f", "s16le", "-ac", "2", "-ar", rate,
			"-probesize", "32", "-analyzeduration", "0",
			"-i", "pipe:0", "-loglevel", "quiet",
		}
	}},
}

// DetectBackend returns the first usable pipe backend for the given sample rate
func DetectBackend(rate int) (*BackendConfig, error) {
	r := strconv.Itoa(rate)

	for _, p := range cliPlayers {
		path, err := lookPath(p.bin)
		if err != nil {
			continue
		}
		return &BackendConfig{Type: p.typ, Name: p.name, Path: path, Args: p.args(r)}, nil
	}

	if runtime.GOOS == "freebsd" {
		if _, err := statPath(ossDevice); err == nil {
			return &BackendConfig{Type: BackendOSS, Name: "oss", Path: ossDevice}, nil
		}
	}

	return nil, ErrNoAudioBackend
}
