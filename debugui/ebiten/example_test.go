package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackview/debugui"
	debugui_ebiten "github.com/plus3/stackview/debugui/ebiten"
	"github.com/plus3/stackview/drawstate"
	"github.com/plus3/stackview/tick"
)

// Game implements ebiten.Game and draws the inspector windows with ImGui.
type Game struct {
	scheduler    *tick.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin the ImGui frame before the tick so deferred windows can draw.
	g.imguiBackend.BeginFrame()
	g.scheduler.Once(1.0 / 60.0)
	g.imguiBackend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

type helloWindow struct{}

func (helloWindow) Render() {
	imgui.Begin("Debug Window")
	imgui.Text("Hello from stackview!")
	imgui.End()
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Board Inspector Example", 1280, 720)

	state := drawstate.New()
	scheduler := tick.NewScheduler()
	scheduler.Register(&drawstate.AdvanceStage{State: state})
	scheduler.Register(&debugui.Stage{Windows: []debugui.Window{
		helloWindow{},
		debugui.NewBoardInspector(state),
		debugui.NewPerformanceStats(scheduler, 120),
	}})

	game := &Game{scheduler: scheduler, imguiBackend: backend}
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
