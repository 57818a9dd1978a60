package navigation

import (
	"reflect"

	"github.com/gorustyt/gonavmesh2d/common"
	"github.com/gorustyt/gonavmesh2d/common/logger"

	"go.uber.org/zap"
)

// NavigationPolygonInstance keeps one polygon set registered in a world
// while it is enabled. It registers itself as the owner, so
// GetClosestPointOwner returns the instance.
type NavigationPolygonInstance struct {
	navigation *Navigation2D
	navpoly    PolygonSet
	xform      common.Transform2D
	enabled    bool
	navID      int
}

// NewNavigationPolygonInstance binds an instance to nav. A nil nav gives the
// instance a world of its own.
func NewNavigationPolygonInstance(nav *Navigation2D) *NavigationPolygonInstance {
	if nav == nil {
		nav = NewNavigation2D()
	}
	return &NavigationPolygonInstance{
		navigation: nav,
		xform:      common.Identity2D(),
		enabled:    true,
		navID:      -1,
	}
}

// SetNavigationPolygon swaps the polygon set, re-registering when enabled.
// Setting the same set again does nothing; nil unregisters. Sets of a
// non comparable type are never the same and always re-register.
func (inst *NavigationPolygonInstance) SetNavigationPolygon(navpoly PolygonSet) {
	if samePolygonSet(navpoly, inst.navpoly) {
		return
	}
	inst.unregister()
	inst.navpoly = navpoly
	if inst.enabled {
		inst.register()
	}
}

func (inst *NavigationPolygonInstance) GetNavigationPolygon() PolygonSet {
	return inst.navpoly
}

func (inst *NavigationPolygonInstance) SetEnabled(enabled bool) {
	if inst.enabled == enabled {
		return
	}
	inst.enabled = enabled
	if !enabled {
		inst.unregister()
	} else {
		inst.register()
	}
}

func (inst *NavigationPolygonInstance) IsEnabled() bool {
	return inst.enabled
}

// SetTransform moves the registered polygons. The transform is kept while
// disabled and applied on the next registration.
func (inst *NavigationPolygonInstance) SetTransform(xform common.Transform2D) {
	inst.xform = xform
	if inst.navID != -1 {
		if err := inst.navigation.NavpolySetTransform(inst.navID, xform); err != nil {
			logger.Component("navigation").Debug("NavigationPolygonInstance: set transform", zap.Int("id", inst.navID), zap.Error(err))
		}
	}
}

func (inst *NavigationPolygonInstance) GetTransform() common.Transform2D {
	return inst.xform
}

func (inst *NavigationPolygonInstance) GetNavigation2D() *Navigation2D {
	return inst.navigation
}

// GetNavID returns the id in the world, or -1 while unregistered.
func (inst *NavigationPolygonInstance) GetNavID() int {
	return inst.navID
}

func (inst *NavigationPolygonInstance) register() {
	if inst.navpoly == nil || inst.navID != -1 {
		return
	}
	inst.navID = inst.navigation.NavpolyAdd(inst.navpoly, inst.xform, inst)
}

func (inst *NavigationPolygonInstance) unregister() {
	if inst.navID == -1 {
		return
	}
	if err := inst.navigation.NavpolyRemove(inst.navID); err != nil {
		logger.Component("navigation").Debug("NavigationPolygonInstance: remove", zap.Int("id", inst.navID), zap.Error(err))
	}
	inst.navID = -1
}

func samePolygonSet(a, b PolygonSet) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
