package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/sealbox/internal/util"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := New([]byte("test-master-secret"))
	require.NoError(t, err)
	return c
}

func TestNew_RejectsEmptySecret(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoMasterKey)

	_, err = New([]byte{})
	assert.ErrorIs(t, err, ErrNoMasterKey)
}

func TestFromEnv(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		t.Setenv(MasterKeyEnv, "")
		_, err := FromEnv()
		assert.ErrorIs(t, err, ErrNoMasterKey)
	})

	t.Run("Present", func(t *testing.T) {
		t.Setenv(MasterKeyEnv, "env-master-secret")
		c, err := FromEnv()
		require.NoError(t, err)

		token, err := c.Encrypt(Text("hello"))
		require.NoError(t, err)

		v, err := c.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, "hello", v.Text())
	})
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c := newTestCodec(t)

	t.Run("String", func(t *testing.T) {
		token, err := c.Encrypt(Text("hello world"))
		require.NoError(t, err)

		v, err := c.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, KindText, v.Kind())
		assert.Equal(t, "hello world", v.Text())
	})

	t.Run("EmptyString", func(t *testing.T) {
		token, err := c.Encrypt(Text(""))
		require.NoError(t, err)

		v, err := c.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, KindText, v.Kind())
		assert.Equal(t, "", v.Text())
	})

	t.Run("Structured", func(t *testing.T) {
		token, err := c.Encrypt(Structured(map[string]any{
			"service": "openai",
			"key":     "sk-test-123",
		}))
		require.NoError(t, err)

		v, err := c.Decrypt(token)
		require.NoError(t, err)
		require.True(t, v.IsStructured())

		tree, ok := v.Tree().(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "openai", tree["service"])
		assert.Equal(t, "sk-test-123", tree["key"])
	})

	t.Run("NestedStructured", func(t *testing.T) {
		token, err := c.Encrypt(Structured(map[string]any{
			"email": "user@example.com",
			"api_keys": map[string]any{
				"openai": "sk-test-key",
				"stripe": "pk_test_key",
			},
			"tags": []any{"a", "b"},
		}))
		require.NoError(t, err)

		v, err := c.Decrypt(token)
		require.NoError(t, err)
		require.True(t, v.IsStructured())

		tree := v.Tree().(map[string]any)
		assert.Equal(t, "user@example.com", tree["email"])
		keys := tree["api_keys"].(map[string]any)
		assert.Equal(t, "sk-test-key", keys["openai"])
		assert.Equal(t, []any{"a", "b"}, tree["tags"])
	})

	t.Run("UnicodeString", func(t *testing.T) {
		token, err := c.Encrypt(Text("héllo wörld — 秘密"))
		require.NoError(t, err)

		v, err := c.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, "héllo wörld — 秘密", v.Text())
	})
}

func TestEncrypt_TokensAreUnique(t *testing.T) {
	c := newTestCodec(t)

	t1, err := c.Encrypt(Text("same value"))
	require.NoError(t, err)
	t2, err := c.Encrypt(Text("same value"))
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2, "fresh salt and nonce must make tokens differ")

	for _, token := range []string{t1, t2} {
		v, err := c.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, "same value", v.Text())
	}
}

func TestEncrypt_TokenLayout(t *testing.T) {
	c := newTestCodec(t)

	plaintext := "hello world"
	token, err := c.Encrypt(Text(plaintext))
	require.NoError(t, err)

	raw, err := util.B64Decode(token)
	require.NoError(t, err)

	// salt[16] || nonce[12] || tag[16] || ciphertext
	assert.Equal(t, 16+12+16+len(plaintext), len(raw))
}

func TestDecrypt_TamperDetection(t *testing.T) {
	c := newTestCodec(t)

	token, err := c.Encrypt(Text("hi"))
	require.NoError(t, err)

	raw, err := util.B64Decode(token)
	require.NoError(t, err)

	// Exhaustive over the short token: every byte position across salt,
	// nonce, tag and ciphertext must invalidate the token.
	for i := range raw {
		mutated := util.CopyBytes(raw)
		mutated[i] ^= 0x01
		_, err := c.Decrypt(util.B64Encode(mutated))
		assert.ErrorIs(t, err, ErrDecrypt, "flipped byte at offset %d", i)
	}
}

func TestDecrypt_LastCharSubstitution(t *testing.T) {
	c := newTestCodec(t)

	token, err := c.Encrypt(Text("hello world"))
	require.NoError(t, err)

	last := token[len(token)-1]
	replacement := byte('A')
	if last == replacement {
		replacement = 'B'
	}
	mutated := token[:len(token)-1] + string(replacement)

	_, err = c.Decrypt(mutated)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestDecrypt_WrongMasterSecret(t *testing.T) {
	a, err := New([]byte("master-secret-a"))
	require.NoError(t, err)
	b, err := New([]byte("master-secret-b"))
	require.NoError(t, err)

	token, err := a.Encrypt(Text("confidential"))
	require.NoError(t, err)

	_, err = b.Decrypt(token)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestDecrypt_MalformedInput(t *testing.T) {
	c := newTestCodec(t)

	t.Run("NotBase64", func(t *testing.T) {
		_, err := c.Decrypt("not~base64!")
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := c.Decrypt("")
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("TooShort", func(t *testing.T) {
		// 43 decoded bytes: one short of the minimum header size.
		short, _ := util.RandomBytes(43)
		_, err := c.Decrypt(util.B64Encode(short))
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("HeaderOnlyGarbage", func(t *testing.T) {
		// Exactly header-sized random bytes: structurally valid, but the
		// tag cannot verify.
		raw, _ := util.RandomBytes(44)
		_, err := c.Decrypt(util.B64Encode(raw))
		assert.ErrorIs(t, err, ErrDecrypt)
	})
}

func TestCodec_ConcurrentUse(t *testing.T) {
	c := newTestCodec(t)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 10; j++ {
				token, err := c.Encrypt(Text("parallel"))
				if err != nil {
					done <- err
					return
				}
				if _, err := c.Decrypt(token); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}

func TestGenerateKey(t *testing.T) {
	k1, err := GenerateKey()
	require.NoError(t, err)
	k2, err := GenerateKey()
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)

	raw, err := util.B64Decode(k1)
	require.NoError(t, err)
	assert.Len(t, raw, MasterKeySize)
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "plain", Text("plain").String())
	assert.Equal(t, `{"a":1}`, Structured(map[string]any{"a": 1}).String())
}
