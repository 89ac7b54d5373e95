package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
	mock_notifier "github.com/orgball2608/freecycle-offer-bot/internal/notifier/mocks"
	mock_telegram "github.com/orgball2608/freecycle-offer-bot/internal/telegram/mocks"
	"github.com/orgball2608/freecycle-offer-bot/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func drillMatch() domain.Match {
	return domain.Match{
		Board: domain.Board{URL: "https://groups.freecycle.org/group/GuildfordUK/posts/all"},
		Post: domain.Post{
			URL:      "https://groups.freecycle.org/group/GuildfordUK/posts/123",
			Title:    "Cordless Drill",
			PostID:   "123",
			Location: "Guildford",
			Date:     "Mon Oct 13 09:12:44 2026",
			FullDesc: "barely used power drill",
			ImageURL: domain.NoImage,
		},
		Keyword: "drill",
	}
}

func TestStdoutBoardStarted(t *testing.T) {
	var buf bytes.Buffer
	s := NewStdout(&buf)

	require.NoError(t, s.BoardStarted(context.Background(), domain.Board{URL: "https://example.org/b"}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "https://example.org/b", lines[2])
	for _, i := range []int{0, 1, 3, 4} {
		assert.Equal(t, bannerRule, lines[i])
	}
}

func TestStdoutNotify(t *testing.T) {
	var buf bytes.Buffer
	s := NewStdout(&buf)

	require.NoError(t, s.Notify(context.Background(), drillMatch()))

	assert.Equal(t, strings.Join([]string{
		"Cordless Drill",
		"123",
		"Guildford",
		"Mon Oct 13 09:12:44 2026",
		"NO IMAGE",
		"barely used power drill",
		"https://groups.freecycle.org/group/GuildfordUK/posts/123",
		postDelimiter,
	}, "\n")+"\n", buf.String())
}

func TestMulti(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	match := drillMatch()

	first := mock_notifier.NewMockNotifier(ctrl)
	second := mock_notifier.NewMockNotifier(ctrl)

	boom := errors.New("boom")
	first.EXPECT().BoardStarted(ctx, match.Board).Return(nil)
	second.EXPECT().BoardStarted(ctx, match.Board).Return(nil)
	first.EXPECT().Notify(ctx, match).Return(boom)
	second.EXPECT().Notify(ctx, match).Return(nil)

	m := Multi{first, second}
	require.NoError(t, m.BoardStarted(ctx, match.Board))

	err := m.Notify(ctx, match)
	assert.ErrorIs(t, err, boom)

	var partial *PartialError
	assert.ErrorAs(t, err, &partial)
}

func TestMultiAllSinksFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	match := drillMatch()

	first := mock_notifier.NewMockNotifier(ctrl)
	second := mock_notifier.NewMockNotifier(ctrl)
	first.EXPECT().Notify(ctx, match).Return(errors.New("telegram down"))
	second.EXPECT().Notify(ctx, match).Return(errors.New("kafka down"))

	err := Multi{first, second}.Notify(ctx, match)
	require.Error(t, err)

	var partial *PartialError
	assert.False(t, errors.As(err, &partial))
}

func TestTelegramNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_telegram.NewMockClient(ctrl)
	n := NewTelegram(client, logger.NewNop())

	t.Run("text without image", func(t *testing.T) {
		match := drillMatch()
		client.EXPECT().SendMessageToChannel(FormatTelegram(match)).Return(1, nil)
		require.NoError(t, n.Notify(context.Background(), match))
	})

	t.Run("photo with image", func(t *testing.T) {
		match := drillMatch()
		match.Post.ImageURL = "https://images.freecycle.org/123.jpg"
		client.EXPECT().SendPhotoToChannel(match.Post.ImageURL, FormatTelegram(match)).Return(2, nil)
		require.NoError(t, n.Notify(context.Background(), match))
	})

	t.Run("retries then gives up", func(t *testing.T) {
		n.retry.MaxRetries = 1
		n.retry.InitialInterval = time.Millisecond
		n.retry.MaxInterval = time.Millisecond

		client.EXPECT().SendMessageToChannel(gomock.Any()).Return(0, errors.New("flood")).Times(2)
		require.Error(t, n.Notify(context.Background(), drillMatch()))
	})
}

func TestFormatTelegram(t *testing.T) {
	match := drillMatch()
	match.Post.Title = "Drill (18V)"

	msg := FormatTelegram(match)

	assert.Contains(t, msg, `*Drill \(18V\)*`)
	assert.Contains(t, msg, "📍 Guildford")
	assert.Contains(t, msg, "🔑 drill")
	assert.Contains(t, msg, "[View post](https://groups.freecycle.org/group/GuildfordUK/posts/123)")
}

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaNotify(t *testing.T) {
	w := &fakeWriter{}
	k := &Kafka{writer: w, logger: logger.NewNop()}
	match := drillMatch()

	require.NoError(t, k.BoardStarted(context.Background(), match.Board))
	require.NoError(t, k.Notify(context.Background(), match))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "123", string(w.msgs[0].Key))

	var got domain.Match
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, match, got)

	require.NoError(t, k.Close())
	assert.True(t, w.closed)
}

func TestKafkaNotifyWriteError(t *testing.T) {
	k := &Kafka{writer: &fakeWriter{err: errors.New("no brokers")}, logger: logger.NewNop()}

	err := k.Notify(context.Background(), drillMatch())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no brokers")
}
