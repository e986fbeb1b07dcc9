// This file is part of Gamepak.
//
// Gamepak is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gamepak is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gamepak.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gamepak/cartridge"
	"github.com/jetsetilly/gamepak/cartridgeloader"
	"github.com/jetsetilly/gamepak/config"
	"github.com/jetsetilly/gamepak/curated"
	"github.com/jetsetilly/gamepak/gamepak"
	"github.com/jetsetilly/gamepak/gui/sdlimgui"
	"github.com/jetsetilly/gamepak/logger"
	"github.com/jetsetilly/gamepak/modalflag"
	"github.com/jetsetilly/gamepak/overrides"
	"github.com/jetsetilly/gamepak/overrides/sqlite"
	"github.com/jetsetilly/gamepak/prefs"
	"github.com/jetsetilly/gamepak/session"
	"github.com/jetsetilly/gamepak/statsview"
	"github.com/jetsetilly/gamepak/terminal"
	"github.com/jetsetilly/gamepak/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy()

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// by called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if gui != nil {
				gui.Destroy()
			}

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy()
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// an interface holding a nil pointer is not equal to nil
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy()
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("GUI", "TERM", "LIST", "DELETE", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "GUI":
		err = guiMode(md, sync)

	case "TERM":
		err = termMode(md)

	case "LIST":
		err = listMode(md)

	case "DELETE":
		err = deleteMode(md)

	case "INFO":
		err = infoMode(md)

	case "VERSION":
		err = versionMode(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags shared by all modes
type commonFlags struct {
	prefs     *string
	log       *bool
	statsview *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	f := commonFlags{
		prefs: md.AddString("prefs", "", "preferences for this run only (key::value; key::value)"),
		log:   md.AddBool("log", false, "echo log to stderr"),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	}
	return f
}

// components are the parts of the program that are required by every mode
// that works with a session.
type components struct {
	prefs *config.Preferences

	// the override store. nil if there is no store configured
	store overrides.Store

	sess   *session.Session
	coords *gamepak.Coordinator
}

func (c *components) close() {
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			logger.Log(logger.Allow, "gamepak", err)
		}
	}
}

// setup prepares the preferences and log echoing for a mode.
func setup(f commonFlags) (*config.Preferences, error) {
	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}

	p, err := config.NewPreferences()
	if err != nil {
		return nil, err
	}

	if *f.log || p.EchoLog.Get().(bool) {
		logger.SetEcho(logger.NewColorizer(os.Stderr), true)
	} else {
		logger.SetEcho(nil, false)
	}
	logger.Log(logger.Allow, "config", p.Summary())

	if f.statsview != nil && *f.statsview {
		if err := statsview.Launch(os.Stdout, ""); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// openStore opens the override store named in the preferences. a nil store
// is returned if the preferences specify no store.
func openStore(p *config.Preferences) (overrides.Store, error) {
	if p.StoreKind() == config.StoreNone {
		return nil, nil
	}

	pth, err := p.DatabasePath()
	if err != nil {
		return nil, err
	}

	switch p.StoreKind() {
	case config.StoreFile:
		return overrides.NewFileStore(pth), nil
	case config.StoreSQLite:
		st, err := sqlite.Open(pth)
		if err != nil {
			return nil, err
		}
		return st, nil
	}

	return nil, curated.Errorf("unrecognised store (%s)", p.StoreKind())
}

// newComponents creates the store, session and coordinator and connects them.
func newComponents(p *config.Preferences) (*components, error) {
	c := &components{prefs: p}

	var err error
	c.store, err = openStore(p)
	if err != nil {
		return nil, err
	}

	// the store is only used as a lookup layer if one has been configured
	var lookup overrides.Lookup
	var store gamepak.Store
	if c.store != nil {
		lookup = c.store
		store = c.store
	}

	c.sess = session.NewSession(overrides.NewLayered(lookup))
	c.coords = gamepak.NewCoordinator(c.sess, store,
		gamepak.ClearIdentityOnStop(p.ClearIdentityOnStop.Get().(bool)))
	c.sess.Subscribe(c.coords)

	return c, nil
}

// start a session for the cartridge named on the command line, if there is
// one.
func (c *components) startArg(md *modalflag.Modes) error {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil
	case 1:
		cl, err := cartridgeloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}
		return c.sess.Start(cl)
	}
	return fmt.Errorf("too many arguments for %s mode", md)
}

func guiMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	f := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := setup(f)
	if err != nil {
		return err
	}

	c, err := newComponents(prf)
	if err != nil {
		return err
	}
	defer c.close()

	err = c.startArg(md)
	if err != nil {
		return err
	}

	sync.creator <- func() (GuiCreator, error) {
		return sdlimgui.NewSdlImgui(c.sess, c.coords)
	}

	// wait for creator result
	select {
	case g := <-sync.creation:
		// all session and coordinator activity now happens in the main
		// thread. wait for the window to be closed
		<-g.(*sdlimgui.SdlImgui).Quit()
	case err := <-sync.creationError:
		return err
	}

	return nil
}

func termMode(md *modalflag.Modes) error {
	md.NewMode()
	f := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := setup(f)
	if err != nil {
		return err
	}

	c, err := newComponents(prf)
	if err != nil {
		return err
	}
	defer c.close()

	err = c.startArg(md)
	if err != nil {
		return err
	}

	return terminal.NewTerminal(os.Stdin, os.Stdout, c.sess, c.coords, c.store).Run()
}

func listMode(md *modalflag.Modes) error {
	md.NewMode()
	f := addCommonFlags(md)
	builtin := md.AddBool("builtin", false, "list the built-in overrides")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := setup(f)
	if err != nil {
		return err
	}

	if *builtin {
		var recs []gamepak.Record
		for _, id := range overrides.BuiltinIdentities() {
			rec, err := overrides.Builtin(id)
			if err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return overrides.ListRecords(os.Stdout, recs)
	}

	store, err := openStore(prf)
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("there is no override store")
	}
	defer store.Close()

	return store.List(os.Stdout)
}

func deleteMode(md *modalflag.Modes) error {
	md.NewMode()
	f := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("cartridge identity required for %s mode", md)
	}

	prf, err := setup(f)
	if err != nil {
		return err
	}

	store, err := openStore(prf)
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("there is no override store")
	}
	defer store.Close()

	for _, id := range md.RemainingArgs() {
		err = store.DeleteOverride(id)
		if err != nil {
			return err
		}
		fmt.Printf("deleted override for %s\n", id)
	}

	return nil
}

func infoMode(md *modalflag.Modes) error {
	md.NewMode()
	f := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single cartridge is required for %s mode", md)
	}

	prf, err := setup(f)
	if err != nil {
		return err
	}

	cl, err := cartridgeloader.NewLoader(md.GetArg(0))
	if err != nil {
		return err
	}
	err = cl.Load()
	if err != nil {
		return err
	}

	cart, err := cartridge.Examine(cl.Data)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", cart.Header)
	fmt.Printf("hash: %s\n", cl.Hash)
	fmt.Printf("detected save type: %s\n", cart.SaveType)
	fmt.Printf("detected hardware: %s\n", cart.Hardware)

	store, err := openStore(prf)
	if err != nil {
		return err
	}
	var lookup overrides.Lookup
	if store != nil {
		defer store.Close()
		lookup = store
	}

	rec, err := overrides.NewLayered(lookup).LoadOverride(cart.Header.Identity())
	if err != nil {
		if !curated.Is(err, overrides.NotFound) {
			return err
		}
		fmt.Println("override: none")
		return nil
	}
	fmt.Printf("override: %s\n", rec)

	return nil
}

func versionMode(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Println(v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}
