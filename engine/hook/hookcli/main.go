package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontpatch/core/gdi"
	"github.com/npillmayer/fontpatch/core/gdi/gditest"
	"github.com/npillmayer/fontpatch/core/settings"
	"github.com/npillmayer/fontpatch/engine/classify"
	"github.com/npillmayer/fontpatch/engine/hook"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontpatch.hook'
func tracer() tracing.Trace {
	return tracing.Select("fontpatch.hook")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.fontpatch.hook":     "Info",
		"trace.fontpatch.patch":    "Info",
		"trace.fontpatch.classify": "Info",
		"trace.fontpatch.settings": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().Infof("Trace level is %s", *tlevel)
	pterm.Info.Println("Welcome to the fontpatch simulator")
	//
	// set up REPL
	repl, err := readline.New("fontpatch > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	sim := newSim(repl)
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	sim.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Sim is our simulator object: a fake display plus the hooked module,
// driven interactively.
type Sim struct {
	repl    *readline.Instance
	display *gditest.Display
	mod     *hook.Mod
	conf    testconfig.Conf
	windows map[string]*gditest.Window
	back    gdi.Color
}

func newSim(repl *readline.Instance) *Sim {
	sim := &Sim{
		repl:    repl,
		display: gditest.NewDisplay(),
		conf:    testconfig.Conf{"font.name": "None", "font.customColor": "1"},
		windows: make(map[string]*gditest.Window),
		back:    gdi.RGB(32, 32, 32),
	}
	// a small shell-like window tree to start from
	view := &gditest.Window{Class: classify.ClassShellView}
	sim.windows["view"] = view
	sim.windows["files"] = &gditest.Window{Class: classify.ClassListView, Up: view}
	sim.windows["address"] = &gditest.Window{Class: "ToolbarWindow32", Up: view}
	//
	sim.mod = hook.New(sim.display, settings.New(sim.conf))
	if err := sim.mod.OnInit(sim); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}
	return sim
}

// InstallHook makes Sim the module's hook installer. The "original"
// routines render draw calls to the terminal.
func (sim *Sim) InstallHook(entry string, replacement interface{}) (interface{}, error) {
	tracer().Infof("installing hook for %s", entry)
	switch entry {
	case hook.EntryDrawText:
		return hook.DrawTextFunc(sim.hostDrawText), nil
	case hook.EntryDrawTextEx:
		return hook.DrawTextExFunc(sim.hostDrawTextEx), nil
	}
	return nil, fmt.Errorf("host exports no routine %s", entry)
}

func (sim *Sim) hostDrawText(dc gdi.DC, text string, count int, rect *gdi.Rect, format uint32) int32 {
	face := dc.SelectedFont().Face()
	pterm.Printfln("host renders %q   face=%-20q color=%s", text, face, dc.TextColor())
	return int32(len(text))
}

func (sim *Sim) hostDrawTextEx(dc gdi.DC, text string, count int, rect *gdi.Rect, format uint32,
	params *gdi.DrawTextParams) int32 {
	return sim.hostDrawText(dc, text, count, rect, format)
}

// REPL starts interactive mode.
func (sim *Sim) REPL() {
	for {
		line, err := sim.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := sim.execute(strings.Fields(line))
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (sim *Sim) execute(args []string) (quit bool, err error) {
	switch args[0] {
	case "quit":
		return true, nil
	case "set":
		if len(args) < 3 {
			return false, fmt.Errorf("usage: set <key> <value>")
		}
		sim.conf[args[1]] = strings.Join(args[2:], " ")
		sim.mod.OnSettingsChanged(sim.conf)
	case "settings":
		for k, v := range sim.conf {
			if strings.HasPrefix(k, "font.") {
				pterm.Printfln("%-20s = %s", k, v)
			}
		}
	case "bg":
		if len(args) != 4 {
			return false, fmt.Errorf("usage: bg <r> <g> <b>")
		}
		var rgb [3]int
		for i := 0; i < 3; i++ {
			if rgb[i], err = strconv.Atoi(args[i+1]); err != nil {
				return false, err
			}
		}
		sim.back = gdi.RGB(rgb[0], rgb[1], rgb[2])
		pterm.Printfln("background now %s (luminance %d)", sim.back, classify.Luminance(sim.back))
	case "win":
		if len(args) < 3 {
			return false, fmt.Errorf("usage: win <name> <class> [parent]")
		}
		w := &gditest.Window{Class: args[2]}
		if len(args) > 3 {
			parent, ok := sim.windows[args[3]]
			if !ok {
				return false, fmt.Errorf("no window named %s", args[3])
			}
			w.Up = parent
		}
		sim.windows[args[1]] = w
	case "tree":
		for name, w := range sim.windows {
			path := w.Class
			for up := w.Up; up != nil; up = up.Up {
				path = up.Class + " / " + path
			}
			pterm.Printfln("%-10s %s", name, path)
		}
	case "draw":
		if len(args) < 3 {
			return false, fmt.Errorf("usage: draw <window> <text>")
		}
		w, ok := sim.windows[args[1]]
		if !ok {
			return false, fmt.Errorf("no window named %s", args[1])
		}
		dc := sim.display.NewDC()
		dc.Back = sim.back
		dc.Owner = w
		if err := dc.Desc.SetFace("MS Shell Dlg"); err != nil {
			return false, err
		}
		text := strings.Join(args[2:], " ")
		sim.mod.DrawText(dc, text, len(text), &gdi.Rect{}, 0)
	case "handles":
		pterm.Printfln("font resources: created=%d deleted=%d live=%d",
			sim.display.CreatedFonts(), sim.display.DeletedFonts(), sim.display.LiveFonts())
		if sim.display.LiveFonts() > 0 {
			pterm.Error.Println("live handles after draw calls indicate a leak")
		}
	default:
		help()
	}
	return false, nil
}

func help() {
	pterm.Printfln("commands:")
	pterm.Printfln("  set <key> <value>       change a settings key (e.g. set font.name Segoe UI)")
	pterm.Printfln("  settings                show the font.* settings keys")
	pterm.Printfln("  bg <r> <g> <b>          set the background color for draw calls")
	pterm.Printfln("  win <name> <class> [p]  create a window, optionally below parent p")
	pterm.Printfln("  tree                    list windows with their class ancestry")
	pterm.Printfln("  draw <window> <text>    issue an intercepted draw call")
	pterm.Printfln("  handles                 show the font handle ledger")
	pterm.Printfln("  quit                    leave")
}
