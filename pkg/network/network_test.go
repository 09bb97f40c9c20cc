package network

import "testing"

func TestPlaneLayout(t *testing.T) {
	if TotalPlanes != 112 {
		t.Fatalf("TotalPlanes = %v, want 112", TotalPlanes)
	}
	if AuxPlaneBase != 104 {
		t.Fatalf("AuxPlaneBase = %v, want 104", AuxPlaneBase)
	}
	if PlaneTheirPawns != PlaneOurPawns+6 {
		t.Errorf("their-piece planes must start 6 after ours")
	}
	if PlaneAllOnes != TotalPlanes-1 {
		t.Errorf("PlaneAllOnes = %v, want %v", PlaneAllOnes, TotalPlanes-1)
	}
	if PlaneRule50 != AuxPlaneBase+5 {
		t.Errorf("PlaneRule50 = %v, want %v", PlaneRule50, AuxPlaneBase+5)
	}
}

func TestNewInputPlanes(t *testing.T) {
	var planes = NewInputPlanes()
	if len(planes) != TotalPlanes {
		t.Fatalf("len = %v, want %v", len(planes), TotalPlanes)
	}
	for i := range planes {
		if planes[i].Mask != 0 {
			t.Errorf("plane %v mask = %v, want 0", i, planes[i].Mask)
		}
		if planes[i].Value != 1 {
			t.Errorf("plane %v value = %v, want 1", i, planes[i].Value)
		}
	}
}

func TestInputPlane(t *testing.T) {
	var p InputPlane
	p.Value = 1
	p.SetAll()
	if p.Mask != ^uint64(0) || p.Value != 1 {
		t.Errorf("SetAll() = %+v, want full mask, value 1", p)
	}
	p = InputPlane{}
	p.Fill(37)
	if p.Mask != ^uint64(0) || p.Value != 37 {
		t.Errorf("Fill(37) = %+v, want full mask, value 37", p)
	}
	p.Fill(0)
	if p.Mask != ^uint64(0) || p.Value != 0 {
		t.Errorf("Fill(0) = %+v, want full mask, value 0", p)
	}
}
