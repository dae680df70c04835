// pipeline.go — process-pipeline runtime: `stage1 | stage2 | stage3`.
//
// Each stage is either a closure call or a shell/backtick command. Stages
// run concurrently, one goroutine per stage, wired stdin-to-stdout via
// io.Pipe the way a shell wires real processes; closure stages have their
// ip.stdin/ip.stdout temporarily redirected for the duration of the call so
// `std:io:stdin`/`std:io:stdout` inside the closure read/write the pipe
// instead of the process's real streams.
//
// Grounded on the concurrency shape the teacher's worker-pool/streaming
// code in builtin_io_net.go uses (goroutine-per-unit-of-work, errors
// collected on a channel, os/exec for external processes) — suji's own
// domain twist is that a "process" may be either an external command or a
// suji closure, both satisfying the same stage interface.
package suji

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"strings"
)

func lookupEnvShell() string {
	return os.Getenv("SHELL")
}

func readLine(s *Stream) (string, error) {
	if s.Reader == nil {
		return "", io.EOF
	}
	br, ok := s.Reader.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(s.Reader)
		s.Reader = br
	}
	line, err := br.ReadString('\n')
	return strings.TrimRight(line, "\n"), err
}

func readAll(s *Stream) (string, error) {
	if s.Reader == nil {
		return "", nil
	}
	b, err := io.ReadAll(s.Reader)
	return string(b), err
}

// pipelineStage is one invocation in a `|` chain, already distinguishing
// the "call"/"methodcall" shape (run as a suji closure) from "shell" (run
// as an external command) at parse time via the AST tag.
type pipelineStage struct {
	node S
}

func (ip *Interpreter) runPipeline(n S, env *Env) (Value, error) {
	stages := make([]pipelineStage, 0, len(n)-1)
	for _, s := range n[1:] {
		stages = append(stages, pipelineStage{node: s.(S)})
	}

	readers := make([]*io.PipeReader, len(stages)-1)
	writers := make([]*io.PipeWriter, len(stages)-1)
	for i := range readers {
		r, w := io.Pipe()
		readers[i] = r
		writers[i] = w
	}

	errCh := make(chan error, len(stages))
	var finalOut strings.Builder
	var finalVal Value
	doneCh := make(chan struct{})

	for i, stage := range stages {
		var stageIn io.Reader = ip.stdin
		var stageOut io.Writer = ip.stdout
		if i > 0 {
			stageIn = readers[i-1]
		}
		if i < len(stages)-1 {
			stageOut = writers[i]
		} else {
			stageOut = &finalOut
		}

		go func(i int, stage pipelineStage, in io.Reader, out io.Writer) {
			defer func() {
				if i < len(stages)-1 {
					writers[i].Close()
				}
				if i == len(stages)-1 {
					close(doneCh)
				}
			}()
			v, err := ip.runStage(stage.node, env, in, out)
			if err != nil {
				errCh <- err
			}
			if i == len(stages)-1 {
				finalVal = v
			}
			if i > 0 {
				readers[i-1].Close()
			}
		}(i, stage, stageIn, stageOut)
	}

	<-doneCh
	select {
	case err := <-errCh:
		return Null, err
	default:
	}

	// Sink rule: a final stage that is a closure (not a shell command) and
	// produced a value keeps that value as the pipeline result, ahead of
	// whatever it wrote to stdout.
	if stages[len(stages)-1].node[0].(string) != "shell" && finalVal.Tag != VTNull {
		return finalVal, nil
	}
	return Str(finalOut.String()), nil
}

func (ip *Interpreter) runStage(node S, env *Env, in io.Reader, out io.Writer) (Value, error) {
	tag := node[0].(string)
	if tag == "shell" {
		cmdStr, err := ip.renderShellCommand(node, env)
		if err != nil {
			return Null, err
		}
		cmd := exec.Command(shellPath(), "-c", cmdStr)
		cmd.Stdin = in
		cmd.Stdout = out
		cmd.Stderr = ip.stderr
		if err := cmd.Run(); err != nil {
			// A pipeline stage's non-zero exit is not itself an error (only a
			// bare, non-pipelined shell command is) — only a failure to even
			// start the command surfaces here.
			if _, isExit := err.(*exec.ExitError); !isExit {
				return Null, rtErr(ErrStreamError, 0, 0, "pipeline stage failed: %v", err)
			}
		}
		return Null, nil
	}

	prevIn, prevOut := ip.stdin, ip.stdout
	ip.stdin = &Stream{Name: "pipe-in", Reader: in, IsStdio: true}
	ip.stdout = &Stream{Name: "pipe-out", Writer: out, IsStdio: true}
	defer func() { ip.stdin, ip.stdout = prevIn, prevOut }()

	return ip.eval(node, env)
}
