package sim

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("EventLogger", func() {
	var (
		mockCtrl *gomock.Controller
		buf      *bytes.Buffer
		logger   *EventLogger
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		buf = new(bytes.Buffer)
		logger = NewEventLogger(log.New(buf, "", 0))
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should log events before they are handled", func() {
		handler := NewMockHandler(mockCtrl)
		evt := NewMockEvent(mockCtrl)
		evt.EXPECT().Time().Return(VTimeInStep(3)).AnyTimes()
		evt.EXPECT().Handler().Return(handler).AnyTimes()

		logger.Func(HookCtx{
			Pos:  HookPosBeforeEvent,
			Item: evt,
		})

		Expect(buf.String()).To(ContainSubstring("step 3"))
	})

	It("should ignore other hook positions", func() {
		evt := NewMockEvent(mockCtrl)

		logger.Func(HookCtx{
			Pos:  HookPosAfterEvent,
			Item: evt,
		})

		Expect(buf.String()).To(BeEmpty())
	})
})
