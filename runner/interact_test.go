package runner

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	expect "github.com/google/goexpect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

const testSentinel = "BECOME-SUCCESS-abcdefghijklmnopqrstuvwxyzabcdef"

var testFail = []string{"Authentication failed :-("}

// fakeProcess stands for a spawned please process, wired through pipes.
type fakeProcess struct {
	inR  *io.PipeReader
	inW  *io.PipeWriter
	outR *io.PipeReader
	outW *io.PipeWriter

	done   chan struct{}
	closed int32
	once   sync.Once

	stdin *bufio.Reader
}

func newFakeProcess() *fakeProcess {
	p := &fakeProcess{done: make(chan struct{})}
	p.inR, p.inW = io.Pipe()
	p.outR, p.outW = io.Pipe()
	p.stdin = bufio.NewReader(p.inR)
	return p
}

func (p *fakeProcess) close() error {
	p.once.Do(func() {
		atomic.StoreInt32(&p.closed, 1)
		p.inW.Close()
		p.outW.Close()
		p.inR.Close()
		p.outR.Close()
		close(p.done)
	})
	return nil
}

func (p *fakeProcess) spawn(t *testing.T) *expect.GExpect {
	e, _, err := expect.SpawnGeneric(&expect.GenOptions{
		In:  p.inW,
		Out: p.outR,
		Wait: func() error {
			<-p.done
			return nil
		},
		Close: p.close,
		Check: func() bool {
			return atomic.LoadInt32(&p.closed) == 0
		},
	}, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return e
}

func (p *fakeProcess) print(s string) {
	p.outW.Write([]byte(s))
}

func (p *fakeProcess) readLine() string {
	line, _ := p.stdin.ReadString('\n')
	return strings.TrimRight(line, "\n")
}

// please prompts once and checks the password.
func (p *fakeProcess) please(pass string) {
	p.print("[please] password: ")
	if p.readLine() == pass {
		p.print("\r\n" + testSentinel + "\r\nhello\r\n")
		return
	}
	p.print("\r\nAuthentication failed :-(\r\n")
}

func testConfig(pass string) *Config {
	return &Config{
		RequiresPromptScan: true,
		Pass:               pass,
		Fail:               testFail,
		Sentinel:           testSentinel,
		Timeout:            2 * time.Second,
	}
}

func TestInteractSendsPassword(t *testing.T) {
	p := newFakeProcess()
	e := p.spawn(t)
	go p.please("s3cret")

	_, err := Interact(e, testConfig("s3cret"))
	assert.NoError(t, err)
}

func TestInteractIncorrectPassword(t *testing.T) {
	p := newFakeProcess()
	e := p.spawn(t)
	go p.please("s3cret")

	_, err := Interact(e, testConfig("wrong"))
	assert.True(t, errors.Is(err, ErrIncorrectPassword), "got %v", err)
}

func TestInteractMissingPassword(t *testing.T) {
	p := newFakeProcess()
	e := p.spawn(t)
	go p.print("[please] password: ")

	_, err := Interact(e, testConfig(""))
	assert.True(t, errors.Is(err, ErrMissingPassword), "got %v", err)
}

func TestInteractRepeatedPrompt(t *testing.T) {
	p := newFakeProcess()
	e := p.spawn(t)
	sent := make(chan string, 1)
	go func() {
		p.print("[please] password: ")
		sent <- p.readLine()
		p.print("[please] password: ")
	}()

	_, err := Interact(e, testConfig("s3cret"))
	assert.True(t, errors.Is(err, ErrIncorrectPassword), "got %v", err)
	assert.Equal(t, "s3cret", <-sent)
}

func TestInteractNoPromptNeeded(t *testing.T) {
	p := newFakeProcess()
	e := p.spawn(t)
	go p.print(testSentinel + "\r\n")

	_, err := Interact(e, testConfig(""))
	assert.NoError(t, err)
}

func TestInteractLocalizedPrompt(t *testing.T) {
	p := newFakeProcess()
	e := p.spawn(t)
	got := make(chan string, 1)
	go func() {
		p.print("root's Mot de passe ： ")
		got <- p.readLine()
		p.print("\r\n" + testSentinel + "\r\n")
	}()

	cfg := testConfig("s3cret")
	cfg.Prompts = []string{"Mot de passe"}
	_, err := Interact(e, cfg)
	assert.NoError(t, err)
	assert.Equal(t, "s3cret", <-got)
}

func TestInteractTimeout(t *testing.T) {
	p := newFakeProcess()
	e := p.spawn(t)
	go p.print("Enter passphrase: ")

	cfg := testConfig("s3cret")
	cfg.Timeout = 200 * time.Millisecond
	out, err := Interact(e, cfg)
	assert.True(t, errors.Is(err, ErrPromptTimeout), "got %v", err)
	assert.Equal(t, "Enter passphrase: ", out)
}

func TestInteractRequiresSentinel(t *testing.T) {
	cfg := testConfig("s3cret")
	cfg.Sentinel = ""
	_, err := Interact(nil, cfg)
	assert.Error(t, err)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.Equal(t, ErrMissingPassword, translateError(statusMissingPassword))
	assert.Equal(t, ErrIncorrectPassword, translateError(statusIncorrectPassword))
	assert.Equal(t, ErrPromptTimeout, translateError(expect.TimeoutError(time.Second)))

	other := expect.NewStatus(codes.PermissionDenied, ErrIncorrectPassword.Error())
	err := translateError(other)
	assert.True(t, errors.Is(err, ErrSuccessNotFound), "got %v", err)
	assert.False(t, errors.Is(err, ErrIncorrectPassword))
}

func TestRunEmptyCommand(t *testing.T) {
	assert.NoError(t, Run(&Config{RequiresPromptScan: true}))
}
