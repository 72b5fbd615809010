package editor

import "floorplan/feature/floor/models"

// Host receives the callbacks of the interaction engine. It owns the
// canonical floor; the engine only proposes changes.
type Host interface {
	OnElementPositionUpdate(id string, x, y float64)
	OnElementResize(id string, width, height float64)
	OnElementSelect(id string)
	OnRotateElement(id string)
	OnRotateTable(id string)
	OnDeleteElement(id string)
	OnAddBoundaryWall(walls []models.Wall)
	OnUndoWall()
	SetActiveTab(tab Tab)
	OnHoverWall(id string)
	PersistElement(kind models.ElementKind, id string, placement models.Placement)
	AttachPointerListeners()
	DetachPointerListeners()
	AttachKeyListeners()
	DetachKeyListeners()
}

// HostFuncs adapts plain functions to Host. Nil fields are skipped.
type HostFuncs struct {
	PositionUpdate func(id string, x, y float64)
	Resize         func(id string, width, height float64)
	Select         func(id string)
	RotateElement  func(id string)
	RotateTable    func(id string)
	DeleteElement  func(id string)
	AddWalls       func(walls []models.Wall)
	UndoWall       func()
	ActiveTab      func(tab Tab)
	HoverWall      func(id string)
	Persist        func(kind models.ElementKind, id string, placement models.Placement)
	PointerAttach  func()
	PointerDetach  func()
	KeyAttach      func()
	KeyDetach      func()
}

var _ Host = HostFuncs{}

func (h HostFuncs) OnElementPositionUpdate(id string, x, y float64) {
	if h.PositionUpdate != nil {
		h.PositionUpdate(id, x, y)
	}
}

func (h HostFuncs) OnElementResize(id string, width, height float64) {
	if h.Resize != nil {
		h.Resize(id, width, height)
	}
}

func (h HostFuncs) OnElementSelect(id string) {
	if h.Select != nil {
		h.Select(id)
	}
}

func (h HostFuncs) OnRotateElement(id string) {
	if h.RotateElement != nil {
		h.RotateElement(id)
	}
}

func (h HostFuncs) OnRotateTable(id string) {
	if h.RotateTable != nil {
		h.RotateTable(id)
	}
}

func (h HostFuncs) OnDeleteElement(id string) {
	if h.DeleteElement != nil {
		h.DeleteElement(id)
	}
}

func (h HostFuncs) OnAddBoundaryWall(walls []models.Wall) {
	if h.AddWalls != nil {
		h.AddWalls(walls)
	}
}

func (h HostFuncs) OnUndoWall() {
	if h.UndoWall != nil {
		h.UndoWall()
	}
}

func (h HostFuncs) SetActiveTab(tab Tab) {
	if h.ActiveTab != nil {
		h.ActiveTab(tab)
	}
}

func (h HostFuncs) OnHoverWall(id string) {
	if h.HoverWall != nil {
		h.HoverWall(id)
	}
}

func (h HostFuncs) PersistElement(kind models.ElementKind, id string, placement models.Placement) {
	if h.Persist != nil {
		h.Persist(kind, id, placement)
	}
}

func (h HostFuncs) AttachPointerListeners() {
	if h.PointerAttach != nil {
		h.PointerAttach()
	}
}

func (h HostFuncs) DetachPointerListeners() {
	if h.PointerDetach != nil {
		h.PointerDetach()
	}
}

func (h HostFuncs) AttachKeyListeners() {
	if h.KeyAttach != nil {
		h.KeyAttach()
	}
}

func (h HostFuncs) DetachKeyListeners() {
	if h.KeyDetach != nil {
		h.KeyDetach()
	}
}

// deliver routes one effect to the matching host callback.
func deliver(h Host, eff Effect) {
	switch e := eff.(type) {
	case PositionChanged:
		h.OnElementPositionUpdate(e.ID, e.X, e.Y)
	case SizeChanged:
		h.OnElementResize(e.ID, e.Width, e.Height)
	case ElementRotated:
		h.OnRotateElement(e.ID)
		if e.Kind == models.KindTable {
			h.OnRotateTable(e.ID)
		}
	case PersistElement:
		h.PersistElement(e.Kind, e.ID, e.Placement)
	case SelectionChanged:
		h.OnElementSelect(e.ID)
	case ActiveTabChanged:
		h.SetActiveTab(e.Tab)
	case ElementDeleted:
		h.OnDeleteElement(e.ID)
	case WallsAdded:
		h.OnAddBoundaryWall(e.Walls)
	case WallUndoRequested:
		h.OnUndoWall()
	case HoverChanged:
		h.OnHoverWall(e.WallID)
	case PointerListeners:
		if e.Attached {
			h.AttachPointerListeners()
		} else {
			h.DetachPointerListeners()
		}
	case KeyListeners:
		if e.Attached {
			h.AttachKeyListeners()
		} else {
			h.DetachKeyListeners()
		}
	}
}
