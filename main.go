package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"tankarena/pkg/engine/input"
	"tankarena/pkg/engine/terminal"
	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/devtools"
	"tankarena/pkg/game/generator"
	"tankarena/pkg/game/level"
	"tankarena/pkg/game/renderer"
	"tankarena/pkg/game/renderer/ebiten"
	"tankarena/pkg/game/renderer/tui"
	"tankarena/pkg/game/store"
)

var (
	configPath    = flag.String("config", "", "JSON generator config file")
	width         = flag.Int("width", 0, "arena width in cells")
	height        = flag.Int("height", 0, "arena height in cells")
	cellSize      = flag.Float64("cell-size", 0, "world size of one cell")
	walls         = flag.Int("walls", 0, "number of walls to place")
	maxNeighbours = flag.Int("max-neighbours", 0, "maximum effective wall neighbours of a wall")
	maxChunks     = flag.Int("max-chunks", 0, "maximum number of wall chunks")
	exactWalls    = flag.Bool("exact", false, "retry until exactly -walls walls are placed")
	tankCount     = flag.Int("tanks", 0, "number of tanks including the player")
	tankCodes     = flag.String("codes", "", "comma separated tank codes, player (0) first")
	difficulty    = flag.Int("difficulty", 0, "difficulty level used to weight tank types")
	seed          = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	maxAttempts   = flag.Int("attempts", 0, "generation attempts before giving up")
	debug         = flag.Bool("debug", false, "log intermediate grids while generating")

	storeKind   = flag.String("store", "json", "map store: json or postgres")
	storeTarget = flag.String("db", "maps.json", "JSON file path or PostgreSQL connection string")
	saveName    = flag.String("save", "", "save the arena under this name")
	loadName    = flag.String("load", "", "load a saved arena instead of generating one")
	deleteName  = flag.String("delete", "", "delete a saved arena and exit")
	list        = flag.Bool("list", false, "list saved arenas and exit")

	routeTo  = flag.String("route", "", "show the route from the player to cell x,y")
	dumpPath = flag.String("dump", "", "write a debug dump of the arena to this file")
	htmlPath = flag.String("html", "", "write the arena map as HTML to this file")
	view     = flag.Bool("view", false, "open the arena in a window")
	browse   = flag.Bool("tui", false, "browse the arena in a full-screen terminal UI")
	tileSize = flag.Int("tile", 32, "viewer tile size in pixels")
	plain    = flag.Bool("plain", false, "disable coloured output")
	listKeys = flag.Bool("bindings", false, "list the viewer key bindings and exit")
	lang     = flag.String("lang", "en", "interface language")
	locales  = flag.String("locales", "locales", "directory holding translations")
)

// bindFlag collects repeated -bind action=key specs
type bindFlag []string

func (b *bindFlag) String() string {
	return strings.Join(*b, ",")
}

func (b *bindFlag) Set(spec string) error {
	*b = append(*b, spec)
	return nil
}

var binds bindFlag

func init() {
	flag.Var(&binds, "bind", "rebind a viewer action, e.g. -bind wander=p (repeatable)")
}

func initGettext() {
	gotext.Configure(*locales, *lang, "default")
}

func main() {
	flag.Parse()

	initGettext()

	if *plain || !terminal.IsInteractive() {
		color.Enable = false
	}

	for _, spec := range binds {
		if err := input.ApplyBinding(spec); err != nil {
			log.Fatalf("%s: %v", gotext.Get("Invalid key binding"), err)
		}
	}
	if *listKeys {
		printBindings()
		return
	}

	if *list || *deleteName != "" {
		manageStore()
		return
	}

	cfg, err := buildConfig()
	if err != nil {
		log.Fatalf("%s: %v", gotext.Get("Invalid configuration"), err)
	}

	l, usedSeed, err := obtainLevel(cfg)
	if err != nil {
		log.Fatalf("%s: %v", gotext.Get("Could not build arena"), err)
	}

	if *saveName != "" {
		saveLevel(l, usedSeed)
	}

	exportLevel(l, usedSeed)

	if *view {
		runViewer(l, usedSeed, cfg)
		return
	}

	if *browse {
		if !terminal.IsInteractive() {
			log.Fatal(gotext.Get("The terminal browser needs an interactive terminal"))
		}
		if g := l.Grid(); !terminal.Fits(2*g.Width(), g.Height()+4) {
			log.Fatal(gotext.Get("The arena does not fit the terminal"))
		}
		if err := tui.Run(l, usedSeed); err != nil {
			log.Fatalf("%s: %v", gotext.Get("Terminal browser failed"), err)
		}
		return
	}

	printLevel(l)
}

// buildConfig loads the config file, if any, then applies flags the user set
func buildConfig() (generator.Config, error) {
	cfg := generator.DefaultConfig()
	if *configPath != "" {
		loaded, err := generator.LoadConfig(*configPath)
		if err != nil {
			return generator.Config{}, err
		}
		cfg = loaded
	}

	var parseErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "cell-size":
			cfg.CellSize = *cellSize
		case "walls":
			cfg.Walls = *walls
		case "max-neighbours":
			cfg.MaxWallNeighbours = *maxNeighbours
		case "max-chunks":
			cfg.MaxChunks = *maxChunks
		case "exact":
			cfg.RequireExactWalls = *exactWalls
		case "tanks":
			cfg.Tanks = *tankCount
			cfg.TankCodes = nil
		case "codes":
			cfg.TankCodes, parseErr = parseCodes(*tankCodes)
		case "difficulty":
			cfg.Difficulty = *difficulty
		case "seed":
			cfg.Seed = *seed
		case "attempts":
			cfg.MaxAttempts = *maxAttempts
		case "debug":
			cfg.Debug = *debug
		}
	})
	if parseErr != nil {
		return generator.Config{}, parseErr
	}

	return *cfg, cfg.Validate()
}

func parseCodes(s string) ([]int, error) {
	var codes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		code, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad tank code %q: %w", part, err)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func parseCoord(s string) (world.Coord, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return world.Coord{}, fmt.Errorf("expected x,y, got %q", s)
	}
	cx, err := strconv.Atoi(strings.TrimSpace(x))
	if err != nil {
		return world.Coord{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	cy, err := strconv.Atoi(strings.TrimSpace(y))
	if err != nil {
		return world.Coord{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return world.Coord{X: cx, Y: cy}, nil
}

func openStore() store.Storage {
	s, err := store.Open(*storeKind, *storeTarget)
	if err != nil {
		log.Fatalf("%s: %v", gotext.Get("Could not open map store"), err)
	}
	return s
}

// obtainLevel loads the named arena or generates a new one, returning the
// seed that produced it
func obtainLevel(cfg generator.Config) (*level.Level, int64, error) {
	if *loadName != "" {
		s := openStore()
		defer s.Close()

		record, err := s.LoadMap(*loadName)
		if err != nil {
			return nil, 0, err
		}
		l, err := record.Restore()
		if err != nil {
			return nil, 0, err
		}
		log.Printf("Loaded arena %s", *loadName)
		return l, record.Seed, nil
	}

	res, err := generator.Generate(cfg)
	if err != nil {
		return nil, 0, err
	}
	log.Printf("Generated arena with seed %d (%d wall attempts, %d tank attempts)", res.Seed, res.WallAttempts, res.TankAttempts)
	return level.FromResult(res), res.Seed, nil
}

func saveLevel(l *level.Level, usedSeed int64) {
	s := openStore()
	defer s.Close()

	if err := s.SaveMap(*saveName, store.NewRecord(l, usedSeed)); err != nil {
		log.Fatalf("%s: %v", gotext.Get("Could not save arena"), err)
	}
	fmt.Println(gotext.Get("Saved arena as %s", *saveName))
}

func manageStore() {
	s := openStore()
	defer s.Close()

	if *deleteName != "" {
		if err := s.DeleteMap(*deleteName); err != nil {
			log.Fatalf("%s: %v", gotext.Get("Could not delete arena"), err)
		}
		fmt.Println(gotext.Get("Deleted arena %s", *deleteName))
	}

	if *list {
		names, err := s.ListMaps()
		if err != nil {
			log.Fatalf("%s: %v", gotext.Get("Could not list arenas"), err)
		}
		if len(names) == 0 {
			fmt.Println(gotext.Get("No saved arenas"))
		}
		for _, name := range names {
			fmt.Println(name)
		}
	}
}

func printLevel(l *level.Level) {
	var route []world.Coord
	if *routeTo != "" {
		target, err := parseCoord(*routeTo)
		if err != nil {
			log.Fatalf("%s: %v", gotext.Get("Invalid route target"), err)
		}
		for _, p := range l.PathTo(l.ToWorld(l.PlayerCoord()), l.ToWorld(target), nil) {
			route = append(route, l.ToGrid(p))
		}
	}

	p := renderer.NewPrinter()
	fmt.Print(p.Summary(l))
	fmt.Println()
	fmt.Print(p.Level(l, route))
	fmt.Println()
	fmt.Print(p.Legend())

	if route != nil {
		fmt.Println(gotext.Get("Route length: %d", len(route)))
	}
}

// exportLevel writes the debug dump and HTML map when requested
func exportLevel(l *level.Level, usedSeed int64) {
	if *dumpPath != "" {
		path, err := devtools.DumpLevelToPath(l, usedSeed, *dumpPath)
		if err != nil {
			log.Fatalf("%s: %v", gotext.Get("Could not write map dump"), err)
		}
		log.Printf("Map dumped to %s", path)
	}
	if *htmlPath != "" {
		if err := devtools.SaveHTML(l, *htmlPath); err != nil {
			log.Fatalf("%s: %v", gotext.Get("Could not write HTML map"), err)
		}
		log.Printf("HTML map written to %s", *htmlPath)
	}
}

func runViewer(l *level.Level, usedSeed int64, cfg generator.Config) {
	v, err := ebiten.New(l, usedSeed, *tileSize)
	if err != nil {
		log.Fatalf("%s: %v", gotext.Get("Could not start viewer"), err)
	}

	v.SetRegenerate(func() (*level.Level, int64, error) {
		next := cfg
		next.Seed = 0
		res, err := generator.Generate(next)
		if err != nil {
			return nil, 0, err
		}
		return level.FromResult(res), res.Seed, nil
	})

	if err := ebiten.Run(v); err != nil {
		log.Printf("Viewer stopped: %v", err)
		os.Exit(1)
	}
}

func printBindings() {
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, a := range actions {
		fmt.Printf("%-16s %s\n", input.ActionName(a), strings.Join(byAction[a], " "))
	}
}
