package queue_test

import (
	"context"
	"testing"
	"time"

	"github.com/okian/berth/internal/adapters/mq/queue"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryQueue(t *testing.T) {
	Convey("Given a small bounded queue", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(2))
		ctx := context.Background()

		Convey("When events fit within capacity", func() {
			ok1 := q.Enqueue(ctx, queue.Event{StudentID: "s1", InternshipID: "i1", Action: "view"})
			ok2 := q.Enqueue(ctx, queue.Event{StudentID: "s1", InternshipID: "i2", Action: "view"})

			Convey("Then every enqueue succeeds", func() {
				So(ok1, ShouldBeTrue)
				So(ok2, ShouldBeTrue)
				So(q.Len(ctx), ShouldEqual, 2)
			})

			Convey("And the queue is full", func() {
				ok3 := q.Enqueue(ctx, queue.Event{StudentID: "s1", InternshipID: "i3", Action: "view"})

				Convey("Then further enqueues are refused without blocking", func() {
					So(ok3, ShouldBeFalse)
					So(q.Len(ctx), ShouldEqual, 2)
				})
			})
		})

		Convey("When events are dequeued", func() {
			So(q.Enqueue(ctx, queue.Event{StudentID: "s1", InternshipID: "i1", Action: "apply"}), ShouldBeTrue)

			select {
			case ev := <-q.Dequeue(ctx):
				Convey("Then the payload arrives intact", func() {
					So(ev.StudentID, ShouldEqual, "s1")
					So(ev.Action, ShouldEqual, "apply")
				})
			case <-time.After(time.Second):
				t.Fatal("timed out waiting for event")
			}
		})

		Convey("When the queue is closed", func() {
			So(q.Enqueue(ctx, queue.Event{StudentID: "s1", InternshipID: "i1", Action: "view"}), ShouldBeTrue)
			So(q.Close(), ShouldBeNil)

			Convey("Then it reports closed and rejects new events", func() {
				So(q.IsClosed(), ShouldBeTrue)
				So(q.Enqueue(ctx, queue.Event{StudentID: "s2", InternshipID: "i1", Action: "view"}), ShouldBeFalse)
			})

			Convey("Then queued events remain readable until drained", func() {
				ev, ok := <-q.Dequeue(ctx)
				So(ok, ShouldBeTrue)
				So(ev.InternshipID, ShouldEqual, "i1")

				_, ok = <-q.Dequeue(ctx)
				So(ok, ShouldBeFalse)
			})

			Convey("Then closing again is a no-op", func() {
				So(q.Close(), ShouldBeNil)
			})
		})
	})
}
