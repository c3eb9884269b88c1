package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("SerialEngine", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *SerialEngine
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewSerialEngine()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should handle events in time order", func() {
		handler1 := NewMockHandler(mockCtrl)
		handler2 := NewMockHandler(mockCtrl)
		evt1 := NewMockEvent(mockCtrl)
		evt2 := NewMockEvent(mockCtrl)
		evt3 := NewMockEvent(mockCtrl)
		evt4 := NewMockEvent(mockCtrl)

		evt1.EXPECT().Time().Return(VTimeInStep(4)).AnyTimes()
		evt1.EXPECT().Handler().Return(handler1).AnyTimes()
		evt1.EXPECT().IsSecondary().Return(false).AnyTimes()
		evt2.EXPECT().Time().Return(VTimeInStep(2)).AnyTimes()
		evt2.EXPECT().Handler().Return(handler2).AnyTimes()
		evt2.EXPECT().IsSecondary().Return(false).AnyTimes()
		evt3.EXPECT().Time().Return(VTimeInStep(3)).AnyTimes()
		evt3.EXPECT().Handler().Return(handler1).AnyTimes()
		evt3.EXPECT().IsSecondary().Return(false).AnyTimes()
		evt4.EXPECT().Time().Return(VTimeInStep(5)).AnyTimes()
		evt4.EXPECT().Handler().Return(handler1).AnyTimes()
		evt4.EXPECT().IsSecondary().Return(false).AnyTimes()

		handleEvt2 := handler2.EXPECT().Handle(evt2).Do(func(e Event) {
			engine.Schedule(evt3)
			engine.Schedule(evt4)
		})
		handleEvt3 := handler1.EXPECT().
			Handle(evt3).Do(func(e Event) {}).After(handleEvt2)
		handleEvt1 := handler1.EXPECT().
			Handle(evt1).Do(func(e Event) {}).After(handleEvt3)
		handler1.EXPECT().
			Handle(evt4).Do(func(e Event) {}).After(handleEvt1)

		engine.Schedule(evt1)
		engine.Schedule(evt2)

		engine.Run()

		Expect(engine.CurrentTime()).To(Equal(VTimeInStep(5)))
	})

	It("should handle secondary events after same-time primary events", func() {
		handler := NewMockHandler(mockCtrl)
		primary := NewMockEvent(mockCtrl)
		secondary := NewMockEvent(mockCtrl)

		primary.EXPECT().Time().Return(VTimeInStep(1)).AnyTimes()
		primary.EXPECT().Handler().Return(handler).AnyTimes()
		primary.EXPECT().IsSecondary().Return(false).AnyTimes()
		secondary.EXPECT().Time().Return(VTimeInStep(1)).AnyTimes()
		secondary.EXPECT().Handler().Return(handler).AnyTimes()
		secondary.EXPECT().IsSecondary().Return(true).AnyTimes()

		handlePrimary := handler.EXPECT().Handle(primary)
		handler.EXPECT().Handle(secondary).After(handlePrimary)

		engine.Schedule(secondary)
		engine.Schedule(primary)

		engine.Run()
	})

	It("should invoke simulation end handlers when finished", func() {
		handlerCalled := false
		engine.RegisterSimulationEndHandler(
			simulationEndHandlerFunc(func(now VTimeInStep) {
				handlerCalled = true
			}))

		engine.Finished()

		Expect(handlerCalled).To(BeTrue())
	})
})

type simulationEndHandlerFunc func(now VTimeInStep)

func (f simulationEndHandlerFunc) Handle(now VTimeInStep) {
	f(now)
}
